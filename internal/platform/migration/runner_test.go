// Copyright (c) 2026 Caboomlog. All rights reserved.

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"postgres://caboom:pw@db:5432/caboomlog", "pgx5://caboom:pw@db:5432/caboomlog"},
		{"postgresql://caboom@db/caboomlog?sslmode=disable", "pgx5://caboom@db/caboomlog?sslmode=disable"},
		{"pgx5://db/caboomlog", "pgx5://db/caboomlog"},
		{"host=db dbname=caboomlog", "host=db dbname=caboomlog"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, toPgx5DSN(tt.input))
		})
	}
}
