package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() {
		t.Errorf("new queue is not empty")
	}
	var model []int
	for i := range 10000 {
		if rg.Intn(3) == 0 && len(model) > 0 {
			v, err := q.Pop()
			if err != nil {
				t.Fatalf("pop %d failed: %v", i, err)
			}
			if v != model[0] {
				t.Errorf("popped %d, want %d", v, model[0])
			}
			model = model[1:]
		} else {
			q.Push(i)
			model = append(model, i)
		}
		if q.Size() != uint(len(model)) {
			t.Fatalf("queue size is %d, want %d", q.Size(), len(model))
		}
		if i%1000 == 0 {
			q.Shrink()
		}
	}
	for len(model) > 0 {
		if v, ok := q.Peek(); !ok || v != model[0] {
			t.Errorf("peeked %d, want %d", v, model[0])
		}
		v, _ := q.Pop()
		if v != model[0] {
			t.Errorf("popped %d, want %d", v, model[0])
		}
		model = model[1:]
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](2)
	if _, ok := q.Peek(); ok {
		t.Errorf("peek on empty queue succeeded")
	}
	_, err := q.Pop()
	var e *EmptyQueueError
	if !errors.As(err, &e) {
		t.Errorf("pop on empty queue returned %v, want *EmptyQueueError", err)
	}
	q.Push("a")
	q.Push("b")
	q.Push("c")
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("cleared queue has size %d", q.Size())
	}
	q.Push("d")
	if v, _ := q.Pop(); v != "d" {
		t.Errorf("popped %q after clear, want %q", v, "d")
	}
}
