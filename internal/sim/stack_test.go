package sim

import "testing"

func TestStackDupDropRoundTrip(t *testing.T) {
	s := newStack(8)
	s.push(IntValue(5))
	top, _ := s.top()
	s.push(top) // DUP
	if s.depth() != 2 {
		t.Fatalf("depth after DUP = %d, want 2", s.depth())
	}
	s.pop() // DROP
	if s.depth() != 1 {
		t.Fatalf("depth after DROP = %d, want 1", s.depth())
	}
	v, ok := s.pop()
	if !ok || v.Int() != 5 {
		t.Fatalf("pop = (%v, %v), want (5, true)", v, ok)
	}
}

func TestStackSwapSwapIsIdentity(t *testing.T) {
	s := newStack(8)
	s.push(IntValue(1))
	s.push(IntValue(2))
	s.swapTop()
	s.swapTop()
	a, _ := s.pop()
	b, _ := s.pop()
	if a.Int() != 2 || b.Int() != 1 {
		t.Fatalf("after SWAP SWAP, popped (%d, %d), want (2, 1)", a.Int(), b.Int())
	}
}

func TestStackPopEmptyFails(t *testing.T) {
	s := newStack(8)
	if _, ok := s.pop(); ok {
		t.Fatal("pop on empty stack should fail")
	}
}

func TestStackSwapSingleElementFails(t *testing.T) {
	s := newStack(8)
	s.push(IntValue(1))
	if s.swapTop() {
		t.Fatal("swapTop with one element should fail")
	}
}
