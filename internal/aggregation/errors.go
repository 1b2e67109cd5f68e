package aggregation

import (
	"errors"
	"fmt"

	"github.com/fitme-app/fitme/internal/auth"
)

// ErrInvalidInput marks caller mistakes (bad user id, malformed date).
// Anything else returned by the engine is a store failure.
var ErrInvalidInput = errors.New("invalid input")

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func validateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidInput)
	}
	if !auth.ValidUserID(userID) {
		return fmt.Errorf("%w: malformed user id [%s]", ErrInvalidInput, userID)
	}
	return nil
}
