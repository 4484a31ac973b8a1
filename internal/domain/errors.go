package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")

	ErrMissingBusinessName = errors.New("business name is required")
	ErrMissingLocation     = errors.New("location is required")
	ErrMissingTitle        = errors.New("title is required")
	ErrMissingBuilder      = errors.New("builder is required")
	ErrMissingProjectRef   = errors.New("project reference is required")
	ErrMissingBuilderRef   = errors.New("builder reference is required")
	ErrInvalidCost         = errors.New("estimated cost must be positive")
	ErrMissingTimeline     = errors.New("timeline is required")
	ErrInvalidPrice        = errors.New("price must be positive")
	ErrMissingSellerPhone  = errors.New("seller phone is required")
)

// IsValidation reports whether err is one of the input-validation errors, so
// transports can map them to a rejected request as one class.
func IsValidation(err error) bool {
	for _, e := range []error{
		ErrMissingBusinessName, ErrMissingLocation, ErrMissingTitle,
		ErrMissingBuilder, ErrMissingProjectRef, ErrMissingBuilderRef,
		ErrInvalidCost, ErrMissingTimeline, ErrInvalidPrice,
		ErrMissingSellerPhone,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
