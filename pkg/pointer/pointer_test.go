// Copyright (c) 2026 Caboomlog. All rights reserved.

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caboomlog/backend/pkg/pointer"
)

func TestPointer(t *testing.T) {
	parent := pointer.To("0190f5d2-6a3b-7c4d-8e9f-0a1b2c3d4e5f")
	assert.Equal(t, "0190f5d2-6a3b-7c4d-8e9f-0a1b2c3d4e5f", pointer.Val(parent))

	var root *string
	assert.Equal(t, "", pointer.Val(root))

	assert.True(t, pointer.Equal(root, nil))
	assert.True(t, pointer.Equal(parent, pointer.To(*parent)))
	assert.False(t, pointer.Equal(parent, root))
	assert.False(t, pointer.Equal(parent, pointer.To("other")))
}
