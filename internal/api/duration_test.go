package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1s"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 5*time.Second, "2h 5s"},
		{3*24*time.Hour + 4*time.Hour, "3d 4h"},
		{-90 * time.Second, "1m 30s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatUptime(tt.in), tt.in.String())
	}
}
