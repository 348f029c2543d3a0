package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"server1.misis.ru", "server1-misis-ru"},
		{"MISIS network", "misis-network"},
		{"host/with/slashes", "host-with-slashes"},
		{"weird!@#chars", "weirdchars"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeID(tt.input))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"say \"hi\""`, Quote(`say "hi"`))
}
