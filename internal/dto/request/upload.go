package request

// ImageData may carry a data-URL prefix (data:image/png;base64,...)
type UploadImageRequest struct {
	ImageData string `json:"image_data" validate:"required"`
	ImageType string `json:"image_type" validate:"required,oneof=png jpeg jpg webp"`
}
