package tasklocal

import "testing"

// Keys are declared at init, before any region seals the template.
var (
	keyCount = NewKey(5)
	keyName  = NewKey("boot")
)

func TestRegionIsolation(t *testing.T) {
	r1 := NewRegion()
	r2 := NewRegion()

	SetCurrent(r1)
	keyCount.Set(100)
	keyName.Set("one")

	SetCurrent(r2)
	if got := keyCount.Get(); got != 5 {
		t.Fatalf("fresh region count = %d, want initial 5", got)
	}
	if got := keyName.Get(); got != "boot" {
		t.Fatalf("fresh region name = %q, want initial %q", got, "boot")
	}
	keyCount.Set(200)

	SetCurrent(r1)
	if got := keyCount.Get(); got != 100 {
		t.Fatalf("region one count = %d after switching back, want 100", got)
	}
	SetCurrent(nil)
}

func TestSetCurrentReturnsPrevious(t *testing.T) {
	r := NewRegion()
	prev := SetCurrent(r)
	if got := SetCurrent(prev); got != r {
		t.Fatal("SetCurrent did not return the region being replaced")
	}
}

func TestSentinelRegion(t *testing.T) {
	SetCurrent(nil)
	if got := keyCount.Get(); got != 5 {
		t.Fatalf("sentinel count = %d, want initial 5", got)
	}
	// Writes against the sentinel are visible until something restores it;
	// reset for the tests that follow.
	keyCount.Set(5)
}

func TestUpdate(t *testing.T) {
	r := NewRegion()
	prev := SetCurrent(r)
	defer SetCurrent(prev)

	keyCount.Update(func(v int) int { return v * 3 })
	if got := keyCount.Get(); got != 15 {
		t.Fatalf("Update result = %d, want 15", got)
	}
}

func TestReset(t *testing.T) {
	r := NewRegion()
	prev := SetCurrent(r)
	defer SetCurrent(prev)

	keyCount.Set(999)
	keyName.Set("dirty")
	r.Reset()
	if keyCount.Get() != 5 || keyName.Get() != "boot" {
		t.Fatal("Reset did not restore the template's initial values")
	}
}

func TestLateDeclarationPanics(t *testing.T) {
	NewRegion() // seals the template
	defer func() {
		if recover() == nil {
			t.Fatal("NewKey after sealing did not panic")
		}
	}()
	NewKey(0)
}
