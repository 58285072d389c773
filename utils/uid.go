package utils

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// NewUID returns a short opaque identifier: 22 url-safe characters encoding
// a random UUID. Used for cart groups, orders, restaurants and menus.
func NewUID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
