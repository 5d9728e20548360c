package services

import (
	"errors"

	"filmhay-backend/models"
)

var (
	// ErrMovieNotFound is returned when an id or slug lookup misses
	ErrMovieNotFound = errors.New("movie not found")
	// ErrStoreClosed is returned for writes after Close
	ErrStoreClosed = errors.New("movie store is closed")

	ErrInvalidType  = models.NewValidationError("Invalid movie type")
	ErrInvalidSort  = models.NewValidationError("Invalid sort value")
	ErrInvalidPage  = models.NewValidationError("Page must be greater than zero")
	ErrInvalidLimit = models.NewValidationError("Limit must be between 1 and 20")
)
