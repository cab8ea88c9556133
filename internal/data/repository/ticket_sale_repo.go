package repository

import (
	"context"
	"fmt"

	"coffee-house/internal/data/entity"
	"coffee-house/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketSaleRepository interface {
	// Create inserts the sale and fills in the database-assigned ID
	Create(ctx context.Context, sale *entity.TicketSale) error
	FindByPaymentRef(ctx context.Context, paymentRef string) (*entity.TicketSale, error)
	FindAll(ctx context.Context) ([]*entity.TicketSale, error)
	Totals(ctx context.Context) (tickets int64, revenue float64, err error)
}

type ticketSaleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketSaleRepository(db database.PgxIface, log *zap.Logger) TicketSaleRepository {
	return &ticketSaleRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket_sale")),
	}
}

const ticketSaleColumns = `id, event_id, customer_name, customer_email, customer_phone, quantity, unit_price, total_amount, payment_ref, status, purchased_at`

func scanTicketSale(row pgx.Row) (*entity.TicketSale, error) {
	var sale entity.TicketSale
	err := row.Scan(
		&sale.ID,
		&sale.EventID,
		&sale.CustomerName,
		&sale.CustomerEmail,
		&sale.CustomerPhone,
		&sale.Quantity,
		&sale.UnitPrice,
		&sale.TotalAmount,
		&sale.PaymentRef,
		&sale.Status,
		&sale.PurchasedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *ticketSaleRepository) Create(ctx context.Context, sale *entity.TicketSale) error {
	query := `
		INSERT INTO ticket_sales (event_id, customer_name, customer_email, customer_phone, quantity, unit_price, total_amount, payment_ref, status, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		sale.EventID,
		sale.CustomerName,
		sale.CustomerEmail,
		sale.CustomerPhone,
		sale.Quantity,
		sale.UnitPrice,
		sale.TotalAmount,
		sale.PaymentRef,
		sale.Status,
		sale.PurchasedAt,
	).Scan(&sale.ID)

	if err != nil {
		r.log.Error("Failed to create ticket sale",
			zap.Error(err),
			zap.String("event_id", sale.EventID.String()),
			zap.String("payment_ref", sale.PaymentRef),
		)
		return fmt.Errorf("create ticket sale for %s: %w", sale.PaymentRef, err)
	}

	return nil
}

func (r *ticketSaleRepository) FindByPaymentRef(ctx context.Context, paymentRef string) (*entity.TicketSale, error) {
	query := `SELECT ` + ticketSaleColumns + ` FROM ticket_sales WHERE payment_ref = $1`

	sale, err := scanTicketSale(r.db.QueryRow(ctx, query, paymentRef))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket sale by payment ref",
			zap.Error(err),
			zap.String("payment_ref", paymentRef),
		)
		return nil, fmt.Errorf("find ticket sale by payment ref %s: %w", paymentRef, err)
	}

	return sale, nil
}

func (r *ticketSaleRepository) FindAll(ctx context.Context) ([]*entity.TicketSale, error) {
	query := `SELECT ` + ticketSaleColumns + ` FROM ticket_sales ORDER BY purchased_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find ticket sales", zap.Error(err))
		return nil, fmt.Errorf("find ticket sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.TicketSale
	for rows.Next() {
		sale, err := scanTicketSale(rows)
		if err != nil {
			r.log.Error("Failed to scan ticket sale row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket sale row: %w", err)
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

func (r *ticketSaleRepository) Totals(ctx context.Context) (int64, float64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(total_amount), 0)
		FROM ticket_sales
		WHERE status = 'confirmed'
	`

	var tickets int64
	var revenue float64
	if err := r.db.QueryRow(ctx, query).Scan(&tickets, &revenue); err != nil {
		r.log.Error("Failed to sum ticket sales", zap.Error(err))
		return 0, 0, fmt.Errorf("sum ticket sales: %w", err)
	}

	return tickets, revenue, nil
}
