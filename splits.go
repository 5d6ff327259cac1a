package capgains

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// SplitKeyFormat is the timestamp layout keying split events in a schedule
// file, e.g. "2020-08-31 09:30:00-04:00".
const SplitKeyFormat = "2006-01-02 15:04:05-07:00"

// SplitEvent is one scheduled corporate action: which security splits, and
// by how much.
type SplitEvent struct {
	Security   string
	Multiplier Quantity
}

// UnmarshalJSON decodes the schedule file's ["CODE", multiplier] pairs.
func (e *SplitEvent) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("split event must be a [code, multiplier] pair, got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &e.Security); err != nil {
		return fmt.Errorf("split event code: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &e.Multiplier); err != nil {
		return fmt.Errorf("split event multiplier: %w", err)
	}
	return nil
}

// SplitSchedule maps exact transaction timestamps to the split to apply
// right before processing the transaction dated there.
type SplitSchedule map[string]SplitEvent

// LoadSplitSchedule reads a JSON schedule: an object mapping timestamp
// strings in SplitKeyFormat to [code, multiplier] pairs.
func LoadSplitSchedule(r io.Reader) (SplitSchedule, error) {
	var schedule SplitSchedule
	if err := json.NewDecoder(r).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("cannot parse split schedule: %w", err)
	}
	return schedule, nil
}

// Take consumes and returns the split scheduled at the given time, if any.
// The entry is removed, so each event fires at most once.
func (s SplitSchedule) Take(at time.Time) (SplitEvent, bool) {
	key := at.Format(SplitKeyFormat)
	event, ok := s[key]
	if ok {
		delete(s, key)
	}
	return event, ok
}
