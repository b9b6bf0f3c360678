package meal

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp serialises as an RFC3339 string. Zero values encode as "" and
// both "" and null decode to zero.
type Timestamp struct {
	time.Time
}

// At wraps t for storage.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTime accepts RFC3339 with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, v)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(v)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339Nano)
}
