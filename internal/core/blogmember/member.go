// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package blogmember resolves which users may manage a blog.
package blogmember

import (
	"time"

	"github.com/caboomlog/backend/internal/platform/sec"
)

// Member is a user's membership in one blog.
type Member struct {
	BlogID    string       `json:"blog_id"`
	UserID    string       `json:"user_id"`
	Role      sec.BlogRole `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}
