// Package store provides the in-memory state holder for the todo list.
// It owns an ordered sequence of items, persists the whole sequence to a
// key-value store after every change, and hands out copies only, so callers
// can never alias the stored items.
package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/h0rv/widgets/internal/domain"
	"github.com/h0rv/widgets/internal/kv"
)

var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")
)

// DefaultKey is the kv key the list is persisted under.
const DefaultKey = "todos"

// Store manages the ordered todo list.
type Store struct {
	// Persistence
	kv  kv.Store
	key string
	log zerolog.Logger

	// Item storage, in display order
	items []*domain.Item

	// Most recent persistence failure, cleared by the next successful write
	lastErr error

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the kv key the list is stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides the id source. Ids must be unique for the store's lifetime.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// New creates an empty Store persisting to backend. Call Load to read saved items.
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:    backend,
		key:   DefaultKey,
		log:   zerolog.Nop(),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the persisted one.
// Missing data yields an empty list. Corrupt data is logged, the list is
// reset to empty and the error is returned for the caller's information.
func (s *Store) Load() error {
	s.items = nil

	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("failed to read items, starting empty")
		return err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	items, dropped, err := Decode(raw, s.timestamp())
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("discarding corrupt items")
		return err
	}
	if dropped > 0 {
		s.log.Warn().Int("dropped", dropped).Str("key", s.key).Msg("discarded malformed items")
	}

	s.items = lo.Map(items, func(item domain.Item, _ int) *domain.Item {
		return &item
	})
	return nil
}

// Add appends a new active item with the trimmed text.
// It returns false and changes nothing when the text is blank.
func (s *Store) Add(text string) (domain.Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Item{}, false
	}

	item := &domain.Item{
		ID:        s.uniqueID(),
		Text:      text,
		CreatedAt: s.timestamp(),
	}
	s.items = append(s.items, item)
	s.persist()
	return *item, true
}

// Edit replaces an item's text. Blank text keeps the old value.
// It returns false when the item does not exist or nothing changed.
func (s *Store) Edit(id, text string) bool {
	item := s.find(id)
	if item == nil {
		return false
	}
	text = strings.TrimSpace(text)
	if text == "" || text == item.Text {
		return false
	}
	item.Text = text
	s.persist()
	return true
}

// Toggle flips an item's completion flag. It returns false when the item does not exist.
func (s *Store) Toggle(id string) bool {
	item := s.find(id)
	if item == nil {
		return false
	}
	item.Completed = !item.Completed
	s.persist()
	return true
}

// Remove deletes an item. Removing an absent id is a no-op that returns false.
func (s *Store) Remove(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persist()
	return true
}

// ClearCompleted removes every completed item and returns how many were removed.
func (s *Store) ClearCompleted() int {
	kept := lo.Filter(s.items, func(item *domain.Item, _ int) bool {
		return !item.Completed
	})
	removed := len(s.items) - len(kept)
	if removed == 0 {
		return 0
	}
	s.items = kept
	s.persist()
	return removed
}

// Reorder moves the listed items to the front in the given order, followed by
// every item not listed in its previous relative order. Unknown and repeated
// ids are ignored. This lets a filtered view be reordered without losing the
// items hidden by the filter.
func (s *Store) Reorder(ids []string) {
	byID := make(map[string]*domain.Item, len(s.items))
	for _, item := range s.items {
		byID[item.ID] = item
	}

	reordered := make([]*domain.Item, 0, len(s.items))
	placed := make(map[string]bool, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		placed[id] = true
		reordered = append(reordered, item)
	}
	for _, item := range s.items {
		if !placed[item.ID] {
			reordered = append(reordered, item)
		}
	}

	changed := false
	for i := range reordered {
		if reordered[i] != s.items[i] {
			changed = true
			break
		}
	}
	if !changed {
		return
	}
	s.items = reordered
	s.persist()
}

// FilteredView returns copies of the items matching f, in list order.
func (s *Store) FilteredView(f domain.Filter) []domain.Item {
	matched := lo.Filter(s.items, func(item *domain.Item, _ int) bool {
		return f.Match(*item)
	})
	return lo.Map(matched, func(item *domain.Item, _ int) domain.Item {
		return *item
	})
}

// Items returns copies of all items in list order.
func (s *Store) Items() []domain.Item {
	return s.FilteredView(domain.FilterAll)
}

// Get retrieves an item by id, returning ErrItemNotFound if it does not exist.
func (s *Store) Get(id string) (domain.Item, error) {
	item := s.find(id)
	if item == nil {
		return domain.Item{}, ErrItemNotFound
	}
	return *item, nil
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Counts returns the number of active and completed items.
func (s *Store) Counts() (active, completed int) {
	completed = lo.CountBy(s.items, func(item *domain.Item) bool {
		return item.Completed
	})
	return len(s.items) - completed, completed
}

// LastError returns the most recent persistence failure, or nil after a successful write.
func (s *Store) LastError() error {
	return s.lastErr
}

// persist writes the full list. Failures are logged and remembered but never
// returned: the in-memory list stays authoritative.
func (s *Store) persist() {
	raw, err := Encode(s.Items())
	if err == nil {
		err = s.kv.Set(s.key, raw)
	}
	if err != nil {
		s.lastErr = err
		s.log.Error().Err(err).Str("key", s.key).Int("items", len(s.items)).Msg("failed to persist items")
		return
	}
	s.lastErr = nil
}

func (s *Store) find(id string) *domain.Item {
	if idx := s.index(id); idx >= 0 {
		return s.items[idx]
	}
	return nil
}

func (s *Store) index(id string) int {
	_, idx, ok := lo.FindIndexOf(s.items, func(item *domain.Item) bool {
		return item.ID == id
	})
	if !ok {
		return -1
	}
	return idx
}

// uniqueID draws ids until one is not in use.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.find(id) == nil {
			return id
		}
	}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Round(0)
}
