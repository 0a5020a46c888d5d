package daily

import (
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"
)

// Encode serializes s in the persisted layout:
//
//	{"date":"Wed Oct 14 2026","habits":[{"id":"no-sugar","enabled":false},...]}
func Encode(s Snapshot) ([]byte, error) {
	data, err := go_json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses data without checking the date or the habit set.
// Failures are *ParseError.
func Decode(key string, data []byte) (Snapshot, error) {
	var s Snapshot
	if err := go_json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, &ParseError{Key: key, Cause: err}
	}
	if s.Date == "" {
		return Snapshot{}, &ParseError{Key: key, Cause: errors.New("missing date")}
	}
	return s, nil
}
