// internal/services/errors.go
package services

import "errors"

var (
	ErrDraftNotFound        = errors.New("draft not found")
	ErrPreviewNotFound      = errors.New("preview not found")
	ErrMutationPending      = errors.New("a submission is already in flight for this draft")
	ErrDeletePending        = errors.New("a delete is already in flight")
	ErrNameRequired         = errors.New("product name is required")
	ErrImageRequired        = errors.New("at least one image is required")
	ErrTooManyImages        = errors.New("maximum 3 images allowed")
	ErrImageTooLarge        = errors.New("image exceeds the maximum size")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrConfirmationRequired = errors.New("delete confirmation required")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
)
