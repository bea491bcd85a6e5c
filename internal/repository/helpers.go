package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// timeLayout keeps sub-second precision and the original offset.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseStoredTime parses a stored timestamp. A bad value means the store
// was edited or damaged, so it reports ErrCorruptData.
func parseStoredTime(field, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %v: %w", field, s, err, domain.ErrCorruptData)
	}
	return t, nil
}

func joinBodyParts(parts []domain.BodyPart) string {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = string(p)
	}
	return strings.Join(ss, ",")
}

func splitBodyParts(s string) ([]domain.BodyPart, error) {
	if s == "" {
		return []domain.BodyPart{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]domain.BodyPart, 0, len(fields))
	for _, f := range fields {
		bp, err := domain.ParseBodyPart(f)
		if err != nil {
			return nil, fmt.Errorf("body parts %q: %v: %w", s, err, domain.ErrCorruptData)
		}
		out = append(out, bp)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
