package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ferretería El Salvador", "ferretera-el-salvador"},
		{"Acme Corp", "acme-corp"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"UPPER-case", "upper-case"},
		{"trailing-", "trailing"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input))
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
