package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{
			name:     "indian number with country code",
			phone:    "+919876543210",
			expected: "+91 98765 43210",
		},
		{
			name:     "already spaced input is renormalized",
			phone:    "+91 98765 43210",
			expected: "+91 98765 43210",
		},
		{
			name:     "other country codes are left alone",
			phone:    "+15551234567",
			expected: "+15551234567",
		},
		{
			name:     "no leading plus is left alone",
			phone:    "9876543210",
			expected: "9876543210",
		},
		{
			name:     "indian prefix with wrong digit count is left alone",
			phone:    "+91987",
			expected: "+91987",
		},
		{
			name:     "empty input",
			phone:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDisplayPhone(tt.phone))
		})
	}
}
