package sync

import (
	"testing"

	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/executor"
)

func TestRwLockSharedReaders(t *testing.T) {
	l := NewRwLock(7)
	r1, ok := l.TryRead()
	if !ok {
		t.Fatal("TryRead on a fresh lock failed")
	}
	r2, ok := l.TryRead()
	if !ok {
		t.Fatal("second concurrent reader refused")
	}
	if *r1.Value() != 7 || *r2.Value() != 7 {
		t.Fatal("readers see different payloads")
	}
	if _, ok := l.TryWrite(); ok {
		t.Fatal("writer admitted alongside readers")
	}

	r1.Unlock()
	if _, ok := l.TryWrite(); ok {
		t.Fatal("writer admitted with one reader remaining")
	}
	r2.Unlock()

	w, ok := l.TryWrite()
	if !ok {
		t.Fatal("writer refused on a free lock")
	}
	if _, ok := l.TryRead(); ok {
		t.Fatal("reader admitted alongside a writer")
	}
	*w.Value() = 9
	w.Unlock()

	r3, _ := l.TryRead()
	if *r3.Value() != 9 {
		t.Fatalf("payload = %d after write, want 9", *r3.Value())
	}
	r3.Unlock()
}

func TestRwLockReaderDoubleUnlock(t *testing.T) {
	l := NewRwLock(0)
	r, _ := l.TryRead()
	r.Unlock()
	r.Unlock()
	if _, ok := l.TryWrite(); !ok {
		t.Fatal("double reader unlock corrupted the reader count")
	}
}

// writerFuture waits for exclusive access, stamps the payload and finishes.
type writerFuture struct {
	l   *RwLock[int]
	fut *WriteFuture[int]
}

func (f *writerFuture) Poll(cx *api.Context) (struct{}, api.Poll) {
	if cx.Cancelled() {
		return struct{}{}, api.Ready
	}
	if f.fut == nil {
		f.fut = f.l.Write()
	}
	g, p := f.fut.Poll(cx)
	if p == api.Pending {
		return struct{}{}, api.Pending
	}
	*g.Value() = 1
	g.Unlock()
	return struct{}{}, api.Ready
}

func TestWriterWaitsForReaders(t *testing.T) {
	e := newTestExecutor()
	l := NewRwLock(0)

	r1, _ := l.TryRead()
	r2, _ := l.TryRead()

	h := executor.Spawn(e, &writerFuture{l: l})
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	if h.Done() {
		t.Fatal("writer ran while readers held the lock")
	}

	r1.Unlock()
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	if h.Done() {
		t.Fatal("writer ran with one reader remaining")
	}

	r2.Unlock()
	for i := 0; i < 5 && !h.Done(); i++ {
		e.Tick()
	}
	if !h.Done() {
		t.Fatal("writer never ran after the last reader left")
	}
	r, _ := l.TryRead()
	if *r.Value() != 1 {
		t.Fatalf("payload = %d, want 1", *r.Value())
	}
	r.Unlock()
}
