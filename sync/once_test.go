package sync

import (
	"errors"
	"testing"

	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/executor"
)

func TestOnceRunsInitializerOnce(t *testing.T) {
	e := newTestExecutor()
	var o Once
	runs := 0
	var hs []*executor.Handle[struct{}]
	for i := 0; i < 3; i++ {
		hs = append(hs, executor.Spawn(e, o.CallOnce(func() { runs++ })))
	}

	for i := 0; i < 20; i++ {
		e.Tick()
	}
	for i, h := range hs {
		if !h.Done() {
			t.Fatalf("contender %d never resolved", i)
		}
	}
	if runs != 1 {
		t.Fatalf("initializer ran %d times, want 1", runs)
	}
	if !o.Done() {
		t.Fatal("Once does not report completion")
	}
}

func TestOnceDoneBeforeInit(t *testing.T) {
	var o Once
	if o.Done() {
		t.Fatal("fresh Once reports done")
	}
}

func TestOnceLockSetGet(t *testing.T) {
	var l OnceLock[string]
	if _, ok := l.Get(); ok {
		t.Fatal("Get on an empty cell succeeded")
	}
	if err := l.Set("first"); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	if err := l.Set("second"); !errors.Is(err, api.ErrAlreadyInitialized) {
		t.Fatalf("second Set returned %v, want ErrAlreadyInitialized", err)
	}
	v, ok := l.Get()
	if !ok || v != "first" {
		t.Fatalf("Get = %q,%v, want \"first\",true", v, ok)
	}
}

func TestOnceLockGetOrInit(t *testing.T) {
	e := newTestExecutor()
	var l OnceLock[int]
	inits := 0
	mk := func() int { inits++; return 41 + inits }

	ha := executor.Spawn(e, l.GetOrInit(mk))
	hb := executor.Spawn(e, l.GetOrInit(mk))
	for i := 0; i < 20 && !(ha.Done() && hb.Done()); i++ {
		e.Tick()
	}
	if inits != 1 {
		t.Fatalf("initializer ran %d times, want 1", inits)
	}
	if ha.Value() != hb.Value() {
		t.Fatal("contenders resolved to different cells")
	}
	if got := *ha.Value(); got != 42 {
		t.Fatalf("cell = %d, want 42", got)
	}
}

func TestOnceLockTake(t *testing.T) {
	var l OnceLock[int]
	if _, ok := l.Take(); ok {
		t.Fatal("Take on an empty cell succeeded")
	}
	l.Set(7)
	v, ok := l.Take()
	if !ok || v != 7 {
		t.Fatalf("Take = %d,%v, want 7,true", v, ok)
	}
	// The cell is writable again after Take.
	if _, ok := l.Get(); ok {
		t.Fatal("cell still initialized after Take")
	}
	if err := l.Set(8); err != nil {
		t.Fatalf("Set after Take failed: %v", err)
	}
}

func TestOnceLockTryInsert(t *testing.T) {
	var l OnceLock[int]
	p, stored := l.TryInsert(1)
	if !stored || *p != 1 {
		t.Fatalf("first TryInsert = %d,%v, want 1,true", *p, stored)
	}
	p, stored = l.TryInsert(2)
	if stored || *p != 1 {
		t.Fatalf("second TryInsert = %d,%v, want existing 1,false", *p, stored)
	}
}

func TestLazyLockForce(t *testing.T) {
	e := newTestExecutor()
	inits := 0
	l := NewLazyLock(func() int { inits++; return 99 })

	if _, ok := l.Get(); ok {
		t.Fatal("Get before Force succeeded")
	}

	ha := executor.Spawn(e, l.Force())
	hb := executor.Spawn(e, l.Force())
	for i := 0; i < 20 && !(ha.Done() && hb.Done()); i++ {
		e.Tick()
	}
	if inits != 1 {
		t.Fatalf("initializer ran %d times, want 1", inits)
	}
	if got := *ha.Value(); got != 99 {
		t.Fatalf("forced value = %d, want 99", got)
	}
	v, ok := l.Get()
	if !ok || *v != 99 {
		t.Fatal("Get after Force did not return the value")
	}
}
