package list

import (
	"testing"
)

func TestListPushFront(t *testing.T) {
	t.Parallel()

	l := New[string]()

	l.PushFront("a")
	assertList(t, []string{"a"}, l)

	l.PushFront("b")
	assertList(t, []string{"b", "a"}, l)

	l.PushFront("c")
	assertList(t, []string{"c", "b", "a"}, l)
}

func TestListMoveToFront(t *testing.T) {
	t.Parallel()

	l := New[string]()

	c := l.PushFront("c")
	b := l.PushFront("b")
	a := l.PushFront("a")

	// move el from the back
	l.MoveToFront(c)
	assertList(t, []string{"c", "a", "b"}, l)

	// move el from the middle
	l.MoveToFront(a)
	assertList(t, []string{"a", "c", "b"}, l)

	// moving the front el is a no-op
	l.MoveToFront(a)
	assertList(t, []string{"a", "c", "b"}, l)

	l.MoveToFront(b)
	assertList(t, []string{"b", "a", "c"}, l)
}

func TestListRemove(t *testing.T) {
	t.Parallel()

	l := New[string]()

	d := l.PushFront("d")
	c := l.PushFront("c")
	b := l.PushFront("b")
	a := l.PushFront("a")

	// remove el from the middle
	if v := l.Remove(b); v != "b" {
		t.Errorf("want removed value \"b\", got %q", v)
	}

	assertList(t, []string{"a", "c", "d"}, l)

	// remove the first el
	l.Remove(a)
	assertList(t, []string{"c", "d"}, l)

	// remove the last el
	l.Remove(d)
	assertList(t, []string{"c"}, l)

	// remove the last remaining el
	l.Remove(c)
	assertList(t, nil, l)
}

func TestListEmpty(t *testing.T) {
	t.Parallel()

	l := New[string]()

	if l.Len() != 0 {
		t.Errorf("want len 0, got %d", l.Len())
	}

	if l.Front() != nil {
		t.Error("want nil front on empty list")
	}

	if l.Back() != nil {
		t.Error("want nil back on empty list")
	}
}

func TestListFrontBack(t *testing.T) {
	t.Parallel()

	l := New[string]()

	l.PushFront("b")
	l.PushFront("a")

	if v := l.Front().Value; v != "a" {
		t.Errorf("want front \"a\", got %q", v)
	}

	if v := l.Back().Value; v != "b" {
		t.Errorf("want back \"b\", got %q", v)
	}
}

// assertList verifies the length and the element order of the list,
// walking it both forwards and backwards.
func assertList[V comparable](t *testing.T, want []V, l *List[V]) {
	t.Helper()

	if l.Len() != len(want) {
		t.Fatalf("want len %d, got %d", len(want), l.Len())
	}

	i := 0

	for n := l.Front(); n != nil; n = n.Next() {
		if n.Value != want[i] {
			t.Fatalf("want %v at index %d, got %v", want[i], i, n.Value)
		}

		i++
	}

	if i != len(want) {
		t.Fatalf("want %d elements walking forwards, got %d", len(want), i)
	}

	for n := l.Back(); n != nil; n = n.Prev() {
		i--

		if n.Value != want[i] {
			t.Fatalf("want %v at index %d walking backwards, got %v", want[i], i, n.Value)
		}
	}

	if i != 0 {
		t.Fatalf("backwards walk covered %d elements, want %d", len(want)-i, len(want))
	}
}
