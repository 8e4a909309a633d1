package timezone

import "time"

// Wire dates ("YYYY-MM-DD HH:MM:SS") carry no zone. The service fixes UTC as
// the canonical convention: everything is parsed, stored and compared in UTC.

const WireFormat = "2006-01-02 15:04:05"

func Now() time.Time {
	return time.Now().UTC()
}

// ParseWire parses a wire-format timestamp as UTC.
func ParseWire(s string) (time.Time, error) {
	return time.ParseInLocation(WireFormat, s, time.UTC)
}

// FormatWire renders t in the wire format, normalized to UTC.
func FormatWire(t time.Time) string {
	return t.UTC().Format(WireFormat)
}
