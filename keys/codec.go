package keys

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/erp-rates/interval"
)

var payloadPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}-\d{2}$`)

// Label is the human-readable group name, "<vehicle type> <day type>".
func Label(vehicleType, dayType string) string {
	return vehicleType + " " + dayType
}

// Prefix returns the key prefix shared by every rate of one vehicle type and
// day type.
func Prefix(vehicleType, dayType string) string {
	return Slugify(vehicleType + "-" + dayType)
}

// IntervalKey is the unflattened "HH:MM-HH:MM" form used inside rate tables.
func IntervalKey(start, end interval.Time) string {
	return string(start) + "-" + string(end)
}

// SplitIntervalKey reverses IntervalKey.
func SplitIntervalKey(key string) (interval.Time, interval.Time, error) {
	start, end, ok := strings.Cut(key, "-")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	s, err := interval.ParseTime(start)
	if err != nil {
		return "", "", err
	}
	e, err := interval.ParseTime(end)
	if err != nil {
		return "", "", err
	}
	return s, e, nil
}

// Encode builds the flattened key for one interval under prefix.
func Encode(prefix string, start, end interval.Time) string {
	return Slugify(prefix + "-" + dashed(start) + "-" + dashed(end))
}

// ExtractStartAndEndTime strips prefix and its separator from key and reads
// the two fixed-width times that follow. Malformed keys give meaningless but
// never panicking results; use Decode when the key is untrusted.
func ExtractStartAndEndTime(key, prefix string) (start, end interval.Time) {
	payload := strings.ReplaceAll(clip(key, len(prefix)+1, len(key)), "-", ":")
	return interval.Time(clip(payload, 0, 5)), interval.Time(clip(payload, 6, len(payload)))
}

// Matches reports whether key is a rate key under prefix.
func Matches(key, prefix string) bool {
	rest, ok := strings.CutPrefix(key, prefix+"-")
	return ok && payloadPattern.MatchString(rest)
}

// Decode is the checked form of ExtractStartAndEndTime.
func Decode(key, prefix string) (interval.Time, interval.Time, error) {
	if !Matches(key, prefix) {
		return "", "", fmt.Errorf("%w: %q does not match prefix %q", ErrMalformedKey, key, prefix)
	}
	start, end := ExtractStartAndEndTime(key, prefix)
	if !start.Valid() || !end.Valid() || start >= end {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	return start, end, nil
}

// ActiveKey returns the key of the interval between two consecutive splits
// that contains t. splits must be sorted ascending.
func ActiveKey(prefix string, splits []interval.Time, t interval.Time) (string, bool) {
	i, found := slices.BinarySearch(splits, t)
	if !found {
		i--
	}
	if i < 0 || i+1 >= len(splits) {
		return "", false
	}
	return Encode(prefix, splits[i], splits[i+1]), true
}

func dashed(t interval.Time) string {
	return strings.ReplaceAll(string(t), ":", "-")
}

func clip(s string, from, to int) string {
	from = min(from, len(s))
	to = max(from, min(to, len(s)))
	return s[from:to]
}
