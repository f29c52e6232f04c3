package models

import "errors"

// Domain errors raised by repositories and services. Handlers map these to
// HTTP status codes; anything else is treated as a store failure.
var (
	// ErrCategoryNameTaken is returned when a category with the same name
	// already exists.
	ErrCategoryNameTaken = errors.New("category name already exists")

	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmailTaken is returned when a user with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on any failed login. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminRequired is returned when a claimed identity exists but does not
	// hold the admin role, or is unknown.
	ErrAdminRequired = errors.New("admin access required")
)
