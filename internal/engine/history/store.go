package history

import "sync"

// InitialCapacity is the number of entry slots reserved by NewStore.
const InitialCapacity = 16

// Store is a process-wide history of accepted lines.
type Store struct {
	mu sync.Mutex

	entries []string

	// scroll is the index recalled by the current session; len(entries)
	// when nothing is recalled.
	scroll int
}

// NewStore creates an empty history.
func NewStore() *Store {
	return NewStoreWithCapacity(InitialCapacity)
}

// NewStoreWithCapacity creates an empty history with room for n entries
// before the first growth.
func NewStoreWithCapacity(n int) *Store {
	if n <= 0 {
		n = InitialCapacity
	}
	return &Store{
		entries: make([]string, 0, n),
	}
}

// Commit appends line as the newest entry. Empty lines are committed too.
// The scroll cursor is left pointing at the new sentinel slot.
func (s *Store) Commit(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, line)
	s.scroll = len(s.entries)
}

// BeginSession resets the scroll cursor to just past the newest entry.
func (s *Store) BeginSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scroll = len(s.entries)
}

// Prev moves the scroll cursor one entry back and returns that entry.
// It returns false when already at the oldest entry or the store is empty.
func (s *Store) Prev() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scroll <= 0 {
		return "", false
	}
	s.scroll--
	return s.entries[s.scroll], true
}

// Next moves the scroll cursor one entry forward.
//
// When the cursor sits on the newest entry, Next returns the empty line and
// moves to the not-yet-recalled sentinel, so the next Prev starts again from
// the newest entry. When nothing is recalled it returns false.
func (s *Store) Next() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	switch {
	case s.scroll+1 == n:
		s.scroll = n
		return "", true
	case s.scroll < n:
		s.scroll++
		return s.entries[s.scroll], true
	default:
		return "", false
	}
}

// Len returns the number of committed entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cap returns the number of slots available before the store grows.
func (s *Store) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cap(s.entries)
}

// Scroll returns the current scroll cursor.
func (s *Store) Scroll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll
}

// Recalling reports whether the current session has an entry recalled.
func (s *Store) Recalling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll < len(s.entries)
}

// At returns the entry at index i, oldest first.
func (s *Store) At(i int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.entries) {
		return "", false
	}
	return s.entries[i], true
}

// Entries returns a copy of all entries, oldest first.
func (s *Store) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
