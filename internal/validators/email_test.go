package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"contacto@barbersmart.com", true},
		{" admin@shop.bo ", true},
		{"N/A", false},
		{"", false},
		{"no-at.example.com", false},
		{"user@localhost", false},
		{"user@domain.", false},
		{"Ana <ana@shop.bo>", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEmail(tt.in), tt.in)
	}
}
