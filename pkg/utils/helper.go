package utils

import (
	"fmt"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// FormatConfirmationNumber builds the ticket confirmation number from the sale ID.
// Format: TKT-000042
func FormatConfirmationNumber(saleID int64) string {
	return fmt.Sprintf("TKT-%06d", saleID)
}

// FormatGBP renders an amount in pounds as £X.XX
func FormatGBP(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}

// PoundsToPence converts a pound amount to minor currency units
func PoundsToPence(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
