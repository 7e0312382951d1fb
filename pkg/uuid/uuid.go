// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package uuid generates and checks the time-ordered identifiers used as primary keys.

Version 7 values sort by creation time, which keeps B-tree inserts append-only in
PostgreSQL.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is unrecoverable
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Valid reports whether s is a canonical, hyphenated UUID.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
