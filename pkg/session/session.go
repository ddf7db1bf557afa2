package session

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Item is one ordered line: an item name and how many the client wants.
type Item struct {
	Name string
	Qty  int64
}

// Session is the transient cart of one order flow. Quantities accumulate for
// the whole life of the flow: deselecting an item keeps its last quantity, so
// reselecting it restores that quantity instead of resetting to 1.
type Session struct {
	FlowID   string
	Category string

	mu         sync.Mutex
	selected   []string
	quantities map[string]int64
	order      []string
}

func newSession(category string) *Session {
	return &Session{
		FlowID:     uuid.NewString(),
		Category:   category,
		quantities: make(map[string]int64),
	}
}

// SetSelected replaces the visible selection. Newly seen items default to
// quantity 1; items dropped from the selection keep their quantities.
func (s *Session) SetSelected(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = append([]string(nil), names...)
	for _, name := range names {
		if _, ok := s.quantities[name]; !ok {
			s.quantities[name] = 1
			s.order = append(s.order, name)
		}
	}
}

func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.selected...)
}

func (s *Session) SelectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}

func (s *Session) Quantity(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty, ok := s.quantities[name]; ok {
		return qty
	}
	return 1
}

// SetQuantity applies one raw modal input, parsed as a base-10 integer so
// leading zeros read as decimal. Non-numeric input is ignored and the
// previous quantity stays; anything below 1 clamps to 1.
func (s *Session) SetQuantity(name, raw string) {
	qty, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return
	}
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quantities[name]; !ok {
		s.order = append(s.order, name)
	}
	s.quantities[name] = qty
}

// Items returns the cart lines in the order items first entered the session.
func (s *Session) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, 0, len(s.order))
	for _, name := range s.order {
		items = append(items, Item{Name: name, Qty: s.quantities[name]})
	}
	return items
}

func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quantities) == 0
}

// Store holds live order sessions keyed by flow ID. Sessions expire after
// the configured TTL; a janitor goroutine sweeps them out so abandoned flows
// don't pile up.
type Store struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	expiry   map[string]time.Time
	done     chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		expiry:   make(map[string]time.Time),
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *Store) Create(category string) *Session {
	sess := newSession(category)

	s.mu.Lock()
	s.sessions[sess.FlowID] = sess
	s.expiry[sess.FlowID] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	return sess
}

// Get returns the live session for a flow ID; an expired session is treated
// as gone even if the janitor hasn't swept it yet.
func (s *Store) Get(flowID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[flowID]
	if !ok {
		return nil, false
	}
	if time.Now().After(s.expiry[flowID]) {
		delete(s.sessions, flowID)
		delete(s.expiry, flowID)
		return nil, false
	}
	return sess, true
}

// Extend pushes a session's expiry out, used when the flow enters the
// checkout step.
func (s *Store) Extend(flowID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[flowID]; ok {
		s.expiry[flowID] = time.Now().Add(ttl)
	}
}

func (s *Store) Delete(flowID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, flowID)
	delete(s.expiry, flowID)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) Close() {
	close(s.done)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for flowID, deadline := range s.expiry {
				if now.After(deadline) {
					delete(s.sessions, flowID)
					delete(s.expiry, flowID)
				}
			}
			s.mu.Unlock()
		}
	}
}
