package queue

import (
	"testing"
	"time"
)

func TestSendThenCloseDeliversAllValuesInOrder(t *testing.T) {
	q := NewUnbounded[int]()
	for i := 0; i < 5; i++ {
		q.Send(i)
	}
	q.Close()

	var got []int
	for v := range q.Out() {
		got = append(got, v)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("got[%d] = %d, want %d", i, v, i)
		}
	}
	if len(got) != 5 {
		t.Fatalf("got %d values, want 5", len(got))
	}
}

func TestSendNeverBlocksWithoutAConsumer(t *testing.T) {
	q := NewUnbounded[int]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			q.Send(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked with no consumer draining Out()")
	}
}

func TestSendAfterCloseStillPanics(t *testing.T) {
	q := NewUnbounded[int]()
	q.Close()
	defer func() {
		if recover() == nil {
			t.Fatal("Send on closed queue did not panic")
		}
	}()
	q.Send(1)
}

func TestOutClosesAfterCloseWithNoPendingValues(t *testing.T) {
	q := NewUnbounded[int]()
	q.Close()
	select {
	case _, ok := <-q.Out():
		if ok {
			t.Fatal("received a value from an empty, closed queue")
		}
	case <-time.After(time.Second):
		t.Fatal("Out() never closed")
	}
}
