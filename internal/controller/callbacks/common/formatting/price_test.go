package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price int
		want  string
	}{
		{0, "₱ 0"},
		{500, "₱ 500"},
		{2000, "₱ 2,000"},
		{11500, "₱ 11,500"},
		{1234567, "₱ 1,234,567"},
		{-2500, "₱ -2,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.price))
	}
}
