package critical

import (
	"sync"
	"testing"

	"github.com/momentics/coop-sched/fake"
)

func TestSpinSectionExcludes(t *testing.T) {
	var s SpinSection
	counter := 0

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				tok := s.Acquire()
				counter++
				s.Release(tok)
			}
		}()
	}
	wg.Wait()
	if counter != 8000 {
		t.Fatalf("counter = %d, want 8000 (lost updates under the spin section)", counter)
	}
}

func TestWithBalancesAcquireRelease(t *testing.T) {
	sec := &fake.Section{}
	prev := Active()
	Use(sec)
	defer Use(prev)

	ran := false
	With(func() { ran = true })
	With(func() {})

	if !ran {
		t.Fatal("With did not run the body")
	}
	if sec.Acquires() != 2 {
		t.Fatalf("Acquires = %d, want 2", sec.Acquires())
	}
	if !sec.Balanced() {
		t.Fatal("acquire/release calls unbalanced")
	}
}

func TestWithReleasesOnPanic(t *testing.T) {
	sec := &fake.Section{}
	prev := Active()
	Use(sec)
	defer Use(prev)

	func() {
		defer func() { _ = recover() }()
		With(func() { panic("body failure") })
	}()

	if !sec.Balanced() {
		t.Fatal("panic inside With leaked the critical section")
	}
}

func TestUseNilKeepsActive(t *testing.T) {
	prev := Active()
	Use(nil)
	if Active() != prev {
		t.Fatal("Use(nil) replaced the active section")
	}
}
