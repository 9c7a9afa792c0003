package services

import (
	"errors"
	"fmt"

	"github.com/yungbote/gigifypro-backend/internal/platform/apierr"
)

var (
	ErrProfileNotFound        = apierr.NotFound("profile_not_found", errors.New("profile not found"))
	ErrVolunteerEntryNotFound = apierr.NotFound("volunteer_entry_not_found", errors.New("volunteer entry not found"))
	ErrForbidden              = apierr.Forbidden("forbidden", errors.New("forbidden"))
	ErrUnauthenticated        = apierr.New(401, "unauthorized", errors.New("missing or invalid token"))
	ErrInvalidInput           = apierr.BadRequest("invalid_input", errors.New("invalid input"))
)

// invalid wraps a human-readable reason under ErrInvalidInput.
func invalid(reason string) error {
	return apierr.BadRequest(ErrInvalidInput.Code, fmt.Errorf("%s: %w", reason, ErrInvalidInput))
}
