package stamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultLayout = "2006-01-02 15:04"
	DateLayout    = "2006-01-02"
)

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrUnknownExpr     = errors.New("unknown date expression")
)

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Stamper produces the timestamp text inserted into descriptions.
type Stamper struct {
	location *time.Location
	layout   string
}

// New creates a Stamper for an IANA timezone, e.g. "Europe/Berlin".
// An empty layout means DefaultLayout.
func New(timezone, layout string) (*Stamper, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, timezone, err)
	}
	if layout == "" {
		layout = DefaultLayout
	}
	return &Stamper{location: loc, layout: layout}, nil
}

// Stamp formats t with the stamper layout in its timezone.
func (s *Stamper) Stamp(t time.Time) string {
	return t.In(s.location).Format(s.layout)
}

// StampExpr renders a date expression relative to base. An empty
// expression or "now" gives the full timestamp; day expressions ("today",
// "tomorrow", "yesterday", "in 3 days", "next friday") give a date only.
func (s *Stamper) StampExpr(expr string, base time.Time) (string, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" || expr == "now" {
		return s.Stamp(base), nil
	}

	day, err := s.resolveDay(expr, base)
	if err != nil {
		return "", err
	}
	return day.Format(DateLayout), nil
}

func (s *Stamper) resolveDay(expr string, base time.Time) (time.Time, error) {
	switch expr {
	case "today":
		return s.startOfDay(base), nil
	case "tomorrow":
		return s.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return s.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if m := inDurationPattern.FindStringSubmatch(expr); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownExpr, expr)
		}
		switch {
		case strings.HasPrefix(m[2], "day"):
			return s.startOfDay(base.AddDate(0, 0, amount)), nil
		case strings.HasPrefix(m[2], "week"):
			return s.startOfDay(base.AddDate(0, 0, amount*7)), nil
		default:
			return s.startOfDay(base.AddDate(0, amount, 0)), nil
		}
	}

	if name, ok := strings.CutPrefix(expr, "next "); ok {
		target, ok := weekdays[name]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnknownExpr, name)
		}
		local := base.In(s.location)
		daysUntil := int(target - local.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return s.startOfDay(local.AddDate(0, 0, daysUntil)), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownExpr, expr)
}

// startOfDay returns midnight of t's day in the stamper timezone.
func (s *Stamper) startOfDay(t time.Time) time.Time {
	t = t.In(s.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.location)
}
