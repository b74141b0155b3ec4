package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{bytes: 0, want: "0 B"},
		{bytes: 512, want: "512 B"},
		{bytes: 1536, want: "1.5 KB"},
		{bytes: 5 << 20, want: "5.0 MB"},
		{bytes: 5<<20 + 1, want: "5.0 MB"},
		{bytes: 3 << 30, want: "3.0 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.bytes), "FormatBytes(%d)", tt.bytes)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{duration: 45 * time.Second, want: "45s"},
		{duration: time.Minute, want: "1m0s"},
		{duration: 59*time.Second + 500*time.Millisecond, want: "1m0s"},
		{duration: 90 * time.Minute, want: "1h30m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.duration), "FormatDuration(%s)", tt.duration)
	}
}
