// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ID byte lengths. 8 random bytes is 64 bits of entropy, comfortably above
// the collision floor for this system's id space.
const (
	GameIDBytes    = 8
	SessionIDBytes = 8
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}
