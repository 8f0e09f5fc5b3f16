package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DisplayLayout is the operator-facing timestamp format.
	DisplayLayout = "2006-01-02 15:04:05"

	DefaultDisplayZone   = "Asia/Karachi"
	DefaultDisplayOffset = 5 * time.Hour
)

var ErrInstantIsInvalid = errors.New("instant is invalid")

// parseLayouts are tried in order by ParseInstant. Layouts without a zone are
// interpreted as UTC.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	DisplayLayout,
}

// Source returns the wall clock reading used by an Authority.
type Source func() time.Time

// Authority hands out instants and formats them for display.
type Authority struct {
	source  Source
	display *time.Location
}

// New returns an Authority backed by the system clock.
func New(display *time.Location) *Authority {
	return NewWithSource(display, time.Now)
}

// NewWithSource returns an Authority that reads time from source.
// A nil display location falls back to a fixed UTC+5 zone.
func NewWithSource(display *time.Location, source Source) *Authority {
	if display == nil {
		display = time.FixedZone("UTC+5", int(DefaultDisplayOffset.Seconds()))
	}
	if source == nil {
		source = time.Now
	}
	return &Authority{source: source, display: display}
}

// LoadZone resolves an IANA zone, falling back to a fixed offset when the host has
// no tzdata.
func LoadZone(name string, fallback time.Duration) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone(fixedZoneName(fallback), int(fallback.Seconds()))
}

func fixedZoneName(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h := int(offset.Hours())
	m := int(offset.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}

// Now returns the current instant in UTC.
func (a *Authority) Now() time.Time {
	return Normalize(a.source())
}

// Location returns the display zone.
func (a *Authority) Location() *time.Location {
	return a.display
}

// ToDisplay formats t in the display zone. The zero instant formats as "".
func (a *Authority) ToDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(a.display).Format(DisplayLayout)
}

// ToDisplayPtr is ToDisplay for nullable instants.
func (a *Authority) ToDisplayPtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := a.ToDisplay(*t)
	return &s
}

// Duration returns the whole seconds between start and end, truncated toward zero.
// It returns nil when either side is unknown.
func (a *Authority) Duration(start, end *time.Time) *int64 {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return nil
	}
	seconds := int64(Normalize(*end).Sub(Normalize(*start)) / time.Second)
	return &seconds
}

// Normalize converts t to UTC at microsecond precision.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NormalizePtr is Normalize for nullable instants.
func NormalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := Normalize(*t)
	return &n
}

// ParseInstant accepts ISO-8601 values with or without a zone ("Z", "+05:00",
// or none) and space or "T" separators. Zone-less input is treated as UTC.
func ParseInstant(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInstantIsInvalid)
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInstantIsInvalid, value)
}

// FormatDuration renders seconds as "Xh Ym Zs". A nil duration renders as "-".
func FormatDuration(seconds *int64) string {
	if seconds == nil {
		return "-"
	}
	s := *seconds
	sign := ""
	if s < 0 {
		sign = "-"
		s = -s
	}
	return fmt.Sprintf("%s%dh %dm %ds", sign, s/3600, (s%3600)/60, s%60)
}
