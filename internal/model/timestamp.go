package model

import (
	"bytes"
	"fmt"
	"time"
)

// naiveLayout matches the zone-less datetimes the news API serializes,
// with or without fractional seconds.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Timestamp decodes API datetimes. Values carrying a zone are parsed as
// RFC 3339; zone-less values are taken as UTC. null or "" leave it zero.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("timestamp: expected string, got %s", b)
	}
	s := string(b[1 : len(b)-1])
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = v
		return nil
	}
	v, err := time.ParseInLocation(naiveLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = v
	return nil
}
