package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewTokenKey returns a fresh opaque credential string. The value carries no
// meaning; it is only ever compared against the stored token row.
func NewTokenKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
