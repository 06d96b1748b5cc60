// Package uuid generates and checks the UUIDs used as record keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7. UUIDv7 is time-ordered, so records created
// later sort after earlier ones.
//
// If the random source fails, a UUIDv4 is returned instead.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Version returns the version nibble of s, or 0 if s is not a UUID.
func Version(s string) int {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return 0
	}
	return int(parsed.Version())
}
