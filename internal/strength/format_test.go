package strength

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "instant"},
		{-5, "instant"},
		{math.Inf(1), "instant"},
		{math.NaN(), "instant"},
		{0.5, "0.5s"},
		{59, "59.0s"},
		{60, "1.0m"},
		{90, "1.5m"},
		{3600, "1.0h"},
		{86400, "1.0d"},
		{86400 * 365, "1.0y"},
		{86400 * 365 * 1000, "1000.0y"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.seconds), "seconds=%v", tt.seconds)
	}
}
