package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("admin access required")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// NotFoundError names the missing resource; it matches ErrNotFound
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}
