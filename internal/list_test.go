package internal

import (
	"reflect"
	"testing"
)

func keys(l *LruList[int, string]) []int {
	var out []int
	for e := l.Back(); e != nil; e = e.PrevEntry() {
		out = append(out, e.Key)
	}
	return out
}

func TestLruList_Empty(t *testing.T) {
	var l LruList[int, string]
	if l.Length() != 0 {
		t.Fatalf("bad length: %v", l.Length())
	}
	if l.Front() != nil || l.Back() != nil {
		t.Fatalf("empty list should have no front or back")
	}

	// zero value is usable
	e := l.PushFront(1, "a")
	if l.Front() != e || l.Back() != e {
		t.Fatalf("single entry should be both front and back")
	}
	if e.PrevEntry() != nil {
		t.Fatalf("single entry should have no previous entry")
	}
}

func TestLruList_PushMoveRemove(t *testing.T) {
	l := NewList[int, string]()
	e1 := l.PushFront(1, "a")
	e2 := l.PushFront(2, "b")
	e3 := l.PushFront(3, "c")

	if got, want := keys(l), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	l.MoveToFront(e1)
	if got, want := keys(l), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// already at the front
	l.MoveToFront(e1)
	if got, want := keys(l), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if v := l.Remove(e3); v != "c" {
		t.Fatalf("bad removed value: %v", v)
	}
	if got, want := keys(l), []int{2, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if l.Length() != 2 {
		t.Fatalf("bad length: %v", l.Length())
	}

	// a removed entry no longer belongs to l
	l.MoveToFront(e3)
	if l.Length() != 2 || l.Front() != e1 {
		t.Fatalf("moving a removed entry should not modify the list")
	}

	l.Remove(e2)
	l.Remove(e1)
	if l.Length() != 0 || l.Back() != nil {
		t.Fatalf("list should be empty")
	}
}

func TestLruList_MoveToFrontOtherList(t *testing.T) {
	l1 := NewList[int, string]()
	l2 := NewList[int, string]()
	a := l1.PushFront(1, "a")
	l2.PushFront(2, "b")

	l2.MoveToFront(a)
	if l1.Length() != 1 || l2.Length() != 1 {
		t.Fatalf("lists should be untouched")
	}
	if got, want := keys(l2), []int{2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLruList_Init(t *testing.T) {
	l := NewList[int, string]()
	for i := 0; i < 5; i++ {
		l.PushFront(i, "")
	}
	l.Init()
	if l.Length() != 0 || l.Front() != nil {
		t.Fatalf("Init should clear the list")
	}
	l.PushFront(9, "z")
	if got, want := keys(l), []int{9}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
