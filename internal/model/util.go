package model

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

// CreateID returns a new opaque entity id: a random UUID encoded as base58
// so it stays URL-safe. Unlike a clock-derived id it cannot collide when two
// records are created in the same instant.
func CreateID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
