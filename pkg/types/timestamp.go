package types

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

// naiveLayouts are the offset-less forms older clients send. They are read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp is a request timestamp. It accepts RFC 3339 and naive ISO 8601
// date-times such as "2025-01-01T10:00:00.123456", which are taken as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] != '"' {
		return &json.UnmarshalTypeError{Value: jsonValueKind(data), Type: reflect.TypeOf(Timestamp{})}
	}
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(Timestamp{})}
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(raw), Type: reflect.TypeOf(Timestamp{})}
	}
	t.Time = parsed
	return nil
}

// ParseTimestamp parses an RFC 3339 or naive ISO 8601 value.
func ParseTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return parsed, nil
	}
	for _, layout := range naiveLayouts {
		if naive, naiveErr := time.ParseInLocation(layout, value, time.UTC); naiveErr == nil {
			return naive, nil
		}
	}
	return time.Time{}, err
}

func jsonValueKind(data []byte) string {
	if len(data) == 0 {
		return "empty"
	}
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	}
	return "number"
}

// StoreTime normalises t to what a BSON date holds: UTC, millisecond precision.
func StoreTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// DefaultTimestamp returns the supplied timestamp, or now when the client left
// it out, normalised with StoreTime.
func DefaultTimestamp(supplied *Timestamp, now time.Time) time.Time {
	if supplied != nil && !supplied.IsZero() {
		return StoreTime(supplied.Time)
	}
	return StoreTime(now)
}
