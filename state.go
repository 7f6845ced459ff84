package pando

import (
	"fmt"
	"reflect"
	"sync"
)

// stateEntry is one type-erased value. ptr always holds a *T so that
// GetMut can hand out a stable pointer.
type stateEntry struct {
	typ reflect.Type
	ptr any
}

// Store maps Tokens to type-erased, mutable instance state. A node keeps
// state here when it must outlive the node struct itself (rebuilt widgets,
// state shared between several callbacks of the same node).
//
// Every read of a Token must use the type the entry was created with;
// anything else is a programming error and panics.
type Store struct {
	entries map[Token]stateEntry

	// evictMu guards evicted only. Cleanups run on the runtime's cleanup
	// goroutine; the map itself is only touched on the frame goroutine.
	evictMu sync.Mutex
	evicted []Token
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{entries: make(map[Token]stateEntry)}
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Has reports whether tok has an entry of any type.
func (s *Store) Has(tok Token) bool {
	_, ok := s.entries[tok]
	return ok
}

// Evict drops the entry for tok, whatever its type.
func (s *Store) Evict(tok Token) {
	delete(s.entries, tok)
}

// queueEviction records tok for removal at the next frame boundary.
// Safe to call from any goroutine.
func (s *Store) queueEviction(tok Token) {
	s.evictMu.Lock()
	s.evicted = append(s.evicted, tok)
	s.evictMu.Unlock()
}

// drainEvictions removes every queued token and returns how many entries
// were actually dropped.
func (s *Store) drainEvictions() int {
	s.evictMu.Lock()
	pending := s.evicted
	s.evicted = nil
	s.evictMu.Unlock()

	n := 0
	for _, tok := range pending {
		if _, ok := s.entries[tok]; ok {
			delete(s.entries, tok)
			n++
		}
	}
	return n
}

func typeMismatch(tok Token, have reflect.Type, want reflect.Type) string {
	return fmt.Sprintf("pando: state for %v was created as %v, read as %v", tok, have, want)
}

// Get returns a copy of the state stored for tok.
// Panics if there is no entry or the entry has a different type.
func Get[T any](s *Store, tok Token) T {
	return *GetMut[T](s, tok)
}

// GetMut returns a pointer to the state stored for tok. The pointer stays
// valid until the entry is removed or replaced with Insert.
// Panics if there is no entry or the entry has a different type.
func GetMut[T any](s *Store, tok Token) *T {
	e, ok := s.entries[tok]
	if !ok {
		panic(fmt.Sprintf("pando: no state for %v (want %v)", tok, reflect.TypeFor[T]()))
	}
	p, ok := e.ptr.(*T)
	if !ok {
		panic(typeMismatch(tok, e.typ, reflect.TypeFor[T]()))
	}
	return p
}

// GetOrDefault returns the state for tok, creating a zero T first if the
// entry does not exist yet.
func GetOrDefault[T any](s *Store, tok Token) *T {
	if e, ok := s.entries[tok]; ok {
		p, ok := e.ptr.(*T)
		if !ok {
			panic(typeMismatch(tok, e.typ, reflect.TypeFor[T]()))
		}
		return p
	}
	p := new(T)
	s.entries[tok] = stateEntry{typ: reflect.TypeFor[T](), ptr: p}
	return p
}

// Insert stores v for tok, replacing any previous entry and its type.
func Insert[T any](s *Store, tok Token, v T) {
	p := new(T)
	*p = v
	s.entries[tok] = stateEntry{typ: reflect.TypeFor[T](), ptr: p}
}

// Remove deletes and returns the entry for tok. ok is false if there was no
// entry. Removing under the wrong type panics like a mismatched read.
func Remove[T any](s *Store, tok Token) (v T, ok bool) {
	e, found := s.entries[tok]
	if !found {
		return v, false
	}
	p, match := e.ptr.(*T)
	if !match {
		panic(typeMismatch(tok, e.typ, reflect.TypeFor[T]()))
	}
	delete(s.entries, tok)
	return *p, true
}

// stateScope is satisfied by every context type.
type stateScope interface {
	Store() *Store
	Token() Token
}

// StateOf returns the current node's state, default-constructing it on
// first access.
func StateOf[T any](cx stateScope) *T {
	return GetOrDefault[T](cx.Store(), cx.Token())
}
