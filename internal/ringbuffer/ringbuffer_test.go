package ringbuffer

import (
	"testing"
	"time"
)

func TestWriteReadFIFO(t *testing.T) {
	rb := New[int](4)
	for i := 0; i < 4; i++ {
		v := i
		if !rb.Write(&v) {
			t.Fatalf("write %d: expected success", i)
		}
	}

	for i := 0; i < 4; i++ {
		v, ok := rb.Read()
		if !ok {
			t.Fatalf("read %d: expected an item", i)
		}
		if *v != i {
			t.Fatalf("read %d: got %d, want %d", i, *v, i)
		}
	}
}

func TestWriteFailsWhenFull(t *testing.T) {
	rb := New[int](2)
	a, b, c := 1, 2, 3
	if !rb.Write(&a) || !rb.Write(&b) {
		t.Fatal("expected first two writes to succeed")
	}
	if rb.Write(&c) {
		t.Fatal("expected write to a full buffer to fail")
	}
	if rb.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rb.Len())
	}
}

func TestIsEmpty(t *testing.T) {
	rb := New[int](2)
	if !rb.IsEmpty() {
		t.Fatal("new buffer should be empty")
	}
	v := 42
	rb.Write(&v)
	if rb.IsEmpty() {
		t.Fatal("buffer should not be empty after a write")
	}
}

func TestReadBlocksUntilWrite(t *testing.T) {
	rb := New[int](1)
	done := make(chan int, 1)
	go func() {
		v, ok := rb.Read()
		if !ok {
			done <- -1
			return
		}
		done <- *v
	}()

	select {
	case <-done:
		t.Fatal("Read returned before any write occurred")
	case <-time.After(20 * time.Millisecond):
	}

	v := 7
	rb.Write(&v)

	select {
	case got := <-done:
		if got != 7 {
			t.Fatalf("got %d, want 7", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Read did not unblock after write")
	}
}

func TestCloseWakesBlockedReader(t *testing.T) {
	rb := New[int](1)
	done := make(chan bool, 1)
	go func() {
		_, ok := rb.Read()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	rb.Close()

	select {
	case ok := <-done:
		if ok {
			t.Fatal("expected Read to report no item after Close on an empty buffer")
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not wake the blocked reader")
	}
}

func TestWriteAfterCloseFails(t *testing.T) {
	rb := New[int](1)
	rb.Close()
	v := 1
	if rb.Write(&v) {
		t.Fatal("expected write after Close to fail")
	}
}

func TestWrapAroundPreservesOrder(t *testing.T) {
	rb := New[int](3)
	for i := 0; i < 10; i++ {
		v := i
		if !rb.Write(&v) {
			t.Fatalf("write %d: expected success", i)
		}
		got, ok := rb.Read()
		if !ok || *got != i {
			t.Fatalf("read %d: got %v, ok=%v", i, got, ok)
		}
	}
}
