package product

import "strings"

// ProductStatus represents the publication state of a product
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusDraft    ProductStatus = "draft"
	StatusArchived ProductStatus = "archived"
)

// ParseStatus validates a raw status string
func ParseStatus(raw string) (ProductStatus, error) {
	status := ProductStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case StatusActive, StatusDraft, StatusArchived:
		return status, nil
	default:
		return "", ErrUnknownStatus
	}
}

// IsActive returns true for published products
func (s ProductStatus) IsActive() bool {
	return s == StatusActive
}

// IsDraft returns true for unpublished products
func (s ProductStatus) IsDraft() bool {
	return s == StatusDraft
}

// IsArchived returns true for retired products
func (s ProductStatus) IsArchived() bool {
	return s == StatusArchived
}

// IsEditable returns true if the product can still be modified
func (s ProductStatus) IsEditable() bool {
	return s != StatusArchived
}

// String implements fmt.Stringer
func (s ProductStatus) String() string {
	return string(s)
}
