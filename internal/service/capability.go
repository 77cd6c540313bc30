package service

import "churchapi/internal/models"

// Capability decides whether an actor may perform an operation. Routes
// declare the capability they need and the check runs before the request
// body is read.
type Capability func(actor models.Actor) error

// Authenticated allows any caller with a verified token
func Authenticated(actor models.Actor) error {
	if actor.UserID == "" {
		return ErrUnauthenticated
	}
	return nil
}

// AdminOnly allows authenticated callers with the admin role
func AdminOnly(actor models.Actor) error {
	if err := Authenticated(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
