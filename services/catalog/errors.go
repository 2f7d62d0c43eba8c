package catalog

import "fmt"

// CatalogError is a typed service-level failure with a stable code.
type CatalogError struct {
	Code    string
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrNotFound means the requested service does not exist.
	ErrNotFound = &CatalogError{Code: "notFound", Message: "service not found"}
	// ErrNotOwner means the requester does not own the listing.
	ErrNotOwner = &CatalogError{Code: "forbidden", Message: "service is owned by another provider"}
	// ErrInvalidCategory means the category is not one of the known values.
	ErrInvalidCategory = &CatalogError{Code: "invalidCategory", Message: "unknown service category"}
)
