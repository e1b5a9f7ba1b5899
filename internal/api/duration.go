package api

import (
	"strconv"
	"strings"
	"time"
)

var uptimeUnits = []struct {
	suffix string
	size   time.Duration
}{
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
}

// formatUptime renders d as e.g. "3d 4h 5s", or milliseconds when under a second
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	if d < time.Second {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}

	var sb strings.Builder
	for _, u := range uptimeUnits {
		n := d / u.size
		if n == 0 {
			continue
		}
		d -= n * u.size
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(n), 10))
		sb.WriteString(u.suffix)
	}
	return sb.String()
}
