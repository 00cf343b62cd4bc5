package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// CalculateFileChecksum calculates the SHA256 checksum for a file.
func CalculateFileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	sha256Hash := sha256.New()

	if _, err := io.Copy(sha256Hash, file); err != nil {
		return "", errors.Wrap(err, "failed to calculate checksum")
	}

	sha256Sum := fmt.Sprintf("%x", sha256Hash.Sum(nil))

	return sha256Sum, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// ParseSimClock parses a simulation clock into absolute minutes. It accepts plain minutes ("1980"),
// a day/hour/minute stamp ("D1 09:00" or "01d09h00m") and a time of day on day 0 ("09:00").
func ParseSimClock(value string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 0, errors.New("empty simulation clock")
	}

	if minutes, err := strconv.Atoi(v); err == nil {
		if minutes < 0 {
			return 0, errors.Errorf("negative simulation clock: %s", value)
		}

		return minutes, nil
	}

	var day, hour, minute int
	switch {
	case strings.HasPrefix(v, "d"):
		if _, err := fmt.Sscanf(v, "d%d %d:%d", &day, &hour, &minute); err != nil {
			return 0, errors.Wrapf(err, "invalid simulation clock: %s", value)
		}
	case strings.Contains(v, "d") && strings.Contains(v, "h"):
		if _, err := fmt.Sscanf(v, "%dd%dh%dm", &day, &hour, &minute); err != nil {
			return 0, errors.Wrapf(err, "invalid simulation clock: %s", value)
		}
	default:
		if _, err := fmt.Sscanf(v, "%d:%d", &hour, &minute); err != nil {
			return 0, errors.Wrapf(err, "invalid simulation clock: %s", value)
		}
	}

	if day < 0 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.Errorf("simulation clock out of range: %s", value)
	}

	return day*minutesPerDay + hour*minutesPerHour + minute, nil
}
