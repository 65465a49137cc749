package service

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrScheduleNotFound = fmt.Errorf("schedule %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrAdminNotFound    = fmt.Errorf("admin %w", ErrNotFound)
	ErrFoodNotFound     = fmt.Errorf("food item %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrMessageNotFound  = fmt.Errorf("message %w", ErrNotFound)
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateReview    = &ValidationError{Message: "You have already reviewed this item recently"}
	ErrNotInCart          = &ValidationError{Message: "Item not in cart"}
)

// ValidationError carries a message that is safe to show to the client. Policy
// rejections use it too.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
