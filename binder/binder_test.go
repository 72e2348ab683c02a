package binder

import "testing"

func TestPushLookupInnermostWins(t *testing.T) {
	s := New()
	s.Push(1) // x
	s.Push(2) // y
	s.Push(1) // x again, shadows the first

	idx, ok := s.Lookup(1)
	if !ok || idx != 0 {
		t.Fatalf("Lookup(x) = (%d, %v), want (0, true) for the innermost binding", idx, ok)
	}
	idx, ok = s.Lookup(2)
	if !ok || idx != 1 {
		t.Fatalf("Lookup(y) = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestLookupMiss(t *testing.T) {
	s := New()
	s.Push(1)
	if _, ok := s.Lookup(99); ok {
		t.Fatal("Lookup(99) succeeded on an unbound nick")
	}
}

func TestPushPopRestoresIndices(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Pop(1)
	idx, ok := s.Lookup(1)
	if !ok || idx != 0 {
		t.Fatalf("after popping y, Lookup(x) = (%d, %v), want (0, true)", idx, ok)
	}
	if _, ok := s.Lookup(2); ok {
		t.Fatal("Lookup(y) succeeded after y was popped")
	}
}

func TestPopTooManyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pop(2) on a stack of depth 1 did not panic")
		}
	}()
	s := New()
	s.Push(1)
	s.Pop(2)
}

func TestReset(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", s.Len())
	}
	if _, ok := s.Lookup(1); ok {
		t.Fatal("Lookup succeeded after Reset")
	}
}

func TestLenTracksDepth(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Push(uint32(i))
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
	s.Pop(3)
	if s.Len() != 2 {
		t.Fatalf("Len() after Pop(3) = %d, want 2", s.Len())
	}
}
