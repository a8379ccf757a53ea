//go:build unit

package notify_test

import (
	"testing"

	"kelurahan-booking/internal/infra/notify"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "leading zero becomes country code", input: "081234567890", want: "6281234567890"},
		{name: "already international", input: "6281234567890", want: "6281234567890"},
		{name: "plus and dashes stripped", input: "+62 812-3456-7890", want: "6281234567890"},
		{name: "spaces and dots stripped", input: "0812 3456.7890", want: "6281234567890"},
		{name: "empty", input: "", want: ""},
		{name: "no digits at all", input: "n/a", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notify.NormalizePhone(tt.input, "62"))
		})
	}
}
