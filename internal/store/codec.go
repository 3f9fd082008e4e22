package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/h0rv/widgets/internal/domain"
)

// ErrCorrupt indicates stored data that is not a JSON array of records.
var ErrCorrupt = errors.New("stored items are corrupt")

// record mirrors domain.Item. Completed and CreatedAt stay raw so a value of
// the wrong type falls back to its default instead of dropping the record.
type record struct {
	ID        *string         `json:"id"`
	Text      *string         `json:"text"`
	Completed json.RawMessage `json:"completed"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

// Encode serializes items as a JSON array of records.
func Encode(items []domain.Item) (string, error) {
	if items == nil {
		items = []domain.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a JSON array of records, discarding malformed entries.
// An entry is malformed when it is not an object, has no id or no text,
// or repeats an earlier id. completed is false unless it is true or a non-zero
// number. createdAt may be RFC 3339 text or epoch milliseconds and is now when
// absent or unparsable. It returns ErrCorrupt when raw is not a JSON array,
// and the number of discarded entries.
func Decode(raw string, now time.Time) ([]domain.Item, int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	items := make([]domain.Item, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	dropped := 0

	for _, entry := range entries {
		item, ok := decodeRecord(entry, now)
		if !ok {
			dropped++
			continue
		}
		if _, dup := seen[item.ID]; dup {
			dropped++
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}

	return items, dropped, nil
}

func decodeRecord(entry json.RawMessage, now time.Time) (domain.Item, bool) {
	var r record
	if err := json.Unmarshal(entry, &r); err != nil {
		return domain.Item{}, false
	}
	if r.ID == nil || strings.TrimSpace(*r.ID) == "" {
		return domain.Item{}, false
	}
	if r.Text == nil || strings.TrimSpace(*r.Text) == "" {
		return domain.Item{}, false
	}

	item := domain.Item{
		ID:        *r.ID,
		Text:      strings.TrimSpace(*r.Text),
		CreatedAt: now,
	}
	item.Completed = decodeCompleted(r.Completed)
	if t, ok := decodeTime(r.CreatedAt); ok {
		item.CreatedAt = t
	}
	return item, true
}

// decodeCompleted reads a boolean, also accepting 0/1 style numbers.
// Anything else is false.
func decodeCompleted(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	return false
}

// decodeTime reads an RFC 3339 string or epoch milliseconds.
func decodeTime(raw json.RawMessage) (time.Time, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil && ms > 0 {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}
