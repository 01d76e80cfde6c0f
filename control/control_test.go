// control/control_test.go
// Author: momentics <momentics@gmail.com>

package control

import "testing"

func TestObserveQueueDepthKeepsPeak(t *testing.T) {
	var s Stats
	for _, n := range []int{1, 4, 2, 4, 3} {
		s.ObserveQueueDepth(n)
	}
	if got := s.QueuePeak.Load(); got != 4 {
		t.Fatalf("QueuePeak = %d, want 4", got)
	}
}

func TestStatsSnapshot(t *testing.T) {
	var s Stats
	s.Spawned.Add(3)
	s.Completed.Add(2)
	s.Polls.Add(9)

	snap := s.Snapshot()
	if snap["tasks.spawned"] != uint64(3) {
		t.Errorf("tasks.spawned = %v, want 3", snap["tasks.spawned"])
	}
	if snap["tasks.completed"] != uint64(2) {
		t.Errorf("tasks.completed = %v, want 2", snap["tasks.completed"])
	}
	if snap["sched.polls"] != uint64(9) {
		t.Errorf("sched.polls = %v, want 9", snap["sched.polls"])
	}
}

func TestConfigStoreSetGet(t *testing.T) {
	cs := NewConfigStore()
	cs.SetConfig(map[string]any{"pin_cpu": 2, "mode": "strict"})

	if v, ok := cs.Get("pin_cpu"); !ok || v != 2 {
		t.Fatalf("Get(pin_cpu) = %v,%v", v, ok)
	}
	snap := cs.GetSnapshot()
	if len(snap) != 2 || snap["mode"] != "strict" {
		t.Fatalf("snapshot = %v", snap)
	}
	// The snapshot is a copy, not a view.
	snap["mode"] = "mutated"
	if v, _ := cs.Get("mode"); v != "strict" {
		t.Fatal("mutating the snapshot leaked into the store")
	}
}

func TestConfigStoreReloadListeners(t *testing.T) {
	cs := NewConfigStore()
	calls := 0
	cs.OnReload(func() { calls++ })

	cs.SetConfig(map[string]any{"a": 1})
	cs.SetConfig(map[string]any{"b": 2})
	if calls != 2 {
		t.Fatalf("listener ran %d times, want 2", calls)
	}
}

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("depth", func() any { return 42 })
	dp.RegisterProbe("name", func() any { return "sched" })

	out := dp.DumpState()
	if out["depth"] != 42 || out["name"] != "sched" {
		t.Fatalf("DumpState = %v", out)
	}
}
