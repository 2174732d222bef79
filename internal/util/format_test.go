package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name string
		val  float64
		want string
	}{
		{"zero", 0, "0%"},
		{"rounds up", 42.7, "43%"},
		{"rounds down", 42.4, "42%"},
		{"half rounds up", 42.5, "43%"},
		{"full", 100, "100%"},
		{"clamps above 100", 123.4, "100%"},
		{"clamps negative", -5, "0%"},
		{"NaN treated as zero", math.NaN(), "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(tt.val))
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name string
		kb   float64
		want string
	}{
		{"zero", 0, "0 KB/s"},
		{"below threshold", 512, "512 KB/s"},
		{"just below threshold", 1023.4, "1023 KB/s"},
		{"at threshold", 1024, "1.0 MB/s"},
		{"above threshold", 2048, "2.0 MB/s"},
		{"fractional megabytes", 1536, "1.5 MB/s"},
		{"negative clamps to zero", -10, "0 KB/s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRate(tt.kb))
		})
	}
}

func TestFormatKB(t *testing.T) {
	assert.Equal(t, "512 KB", FormatKB(512))
	assert.Equal(t, "1.5 MB", FormatKB(1536))
	assert.Equal(t, "2.0 GB", FormatKB(2*1024*1024))
	assert.Equal(t, "0 KB", FormatKB(-1))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "widget", Pluralize(1, "widget", "widgets"))
	assert.Equal(t, "widgets", Pluralize(0, "widget", "widgets"))
	assert.Equal(t, "widgets", Pluralize(2, "widget", "widgets"))
}
