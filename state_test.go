package pando

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type counterState struct {
	N     int
	Names []string
}

func TestStoreInsertGet(t *testing.T) {
	s := NewStore()
	tok := NewToken()
	Insert(s, tok, counterState{N: 3, Names: []string{"a"}})

	got := Get[counterState](s, tok)
	if diff := cmp.Diff(counterState{N: 3, Names: []string{"a"}}, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}
	if !s.Has(tok) || s.Len() != 1 {
		t.Errorf("Has = %v, Len = %d", s.Has(tok), s.Len())
	}
}

func TestStoreGetMutIsStable(t *testing.T) {
	s := NewStore()
	tok := NewToken()
	Insert(s, tok, counterState{})

	p := GetMut[counterState](s, tok)
	p.N = 7
	if q := GetMut[counterState](s, tok); q != p {
		t.Error("GetMut returned a different pointer")
	}
	if got := Get[counterState](s, tok).N; got != 7 {
		t.Errorf("N = %d, want 7", got)
	}
}

func TestStoreGetOrDefault(t *testing.T) {
	s := NewStore()
	tok := NewToken()
	p := GetOrDefault[counterState](s, tok)
	if p.N != 0 {
		t.Errorf("default N = %d", p.N)
	}
	p.N++
	if GetOrDefault[counterState](s, tok).N != 1 {
		t.Error("second GetOrDefault did not return the existing entry")
	}
}

func TestStoreTypeMismatchPanics(t *testing.T) {
	s := NewStore()
	tok := NewToken()
	Insert(s, tok, 5)

	tests := []struct {
		name string
		fn   func()
	}{
		{"Get", func() { Get[string](s, tok) }},
		{"GetMut", func() { GetMut[float64](s, tok) }},
		{"GetOrDefault", func() { GetOrDefault[counterState](s, tok) }},
		{"Remove", func() { Remove[string](s, tok) }},
		{"missing", func() { Get[int](s, NewToken()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPanics(t, tt.name, tt.fn)
		})
	}
	// The entry survives the failed reads.
	if Get[int](s, tok) != 5 {
		t.Error("entry changed after mismatched reads")
	}
}

func TestStoreInsertReplacesType(t *testing.T) {
	s := NewStore()
	tok := NewToken()
	Insert(s, tok, 1)
	Insert(s, tok, "one")
	if got := Get[string](s, tok); got != "one" {
		t.Errorf("Get = %q", got)
	}
	assertPanics(t, "old type", func() { Get[int](s, tok) })
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	tok := NewToken()
	Insert(s, tok, 9)

	v, ok := Remove[int](s, tok)
	if !ok || v != 9 {
		t.Errorf("Remove = %v, %v", v, ok)
	}
	if _, ok := Remove[int](s, tok); ok {
		t.Error("second Remove reported an entry")
	}
	if s.Has(tok) {
		t.Error("entry still present")
	}
}

func TestStoreEvictionQueue(t *testing.T) {
	s := NewStore()
	a, b := NewToken(), NewToken()
	Insert(s, a, 1)
	Insert(s, b, 2)

	s.queueEviction(a)
	s.queueEviction(NewToken()) // never stored
	if !s.Has(a) {
		t.Fatal("queued entry dropped before drain")
	}
	if n := s.drainEvictions(); n != 1 {
		t.Errorf("drainEvictions = %d, want 1", n)
	}
	if s.Has(a) || !s.Has(b) {
		t.Errorf("after drain: Has(a) = %v, Has(b) = %v", s.Has(a), s.Has(b))
	}
	if n := s.drainEvictions(); n != 0 {
		t.Errorf("second drain = %d", n)
	}
}

func TestStateOf(t *testing.T) {
	fs := &frameState{store: NewStore()}
	tok := NewToken()
	cx := &UpdateContext{Context: Context{fs: fs, token: tok}}

	StateOf[counterState](cx).N = 4
	if got := Get[counterState](fs.store, tok).N; got != 4 {
		t.Errorf("N = %d, want 4", got)
	}
}
