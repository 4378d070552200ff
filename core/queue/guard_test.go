// File: core/queue/guard_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tests for the guard implementations and for the asymmetric protocol the
// ring drives through them: save/restore around enqueue, unconditional
// unmask after dequeue, and no guard traffic on the lock-free empty check.

package queue

import (
	"reflect"
	"sync"
	"testing"

	"github.com/momentics/evq/api"
	"github.com/momentics/evq/fake"
)

func TestRing_GuardProtocolOnEnqueue(t *testing.T) {
	g := fake.NewGuard()
	r := NewEventRing(4, g)

	r.Enqueue(300, 1)
	want := []string{"Mask", "Restore"}
	if !reflect.DeepEqual(g.Calls(), want) {
		t.Errorf("enqueue guard trace = %v, want %v", g.Calls(), want)
	}

	// A failed (full) enqueue still takes the critical section: the
	// full-check is part of the atomic region.
	g.Reset()
	for i := 0; i < 3; i++ {
		r.Enqueue(300, i)
	}
	g.Reset()
	if r.Enqueue(300, 9) {
		t.Fatal("enqueue succeeded on full ring")
	}
	if !reflect.DeepEqual(g.Calls(), want) {
		t.Errorf("full-enqueue guard trace = %v, want %v", g.Calls(), want)
	}
}

func TestRing_GuardProtocolOnDequeue(t *testing.T) {
	g := fake.NewGuard()
	r := NewEventRing(4, g)
	r.Enqueue(300, 1)
	g.Reset()

	r.Dequeue()
	want := []string{"Mask", "Unmask"}
	if !reflect.DeepEqual(g.Calls(), want) {
		t.Errorf("dequeue guard trace = %v, want %v", g.Calls(), want)
	}
}

func TestRing_NoGuardTrafficOnEmptyDequeueOrReads(t *testing.T) {
	g := fake.NewGuard()
	r := NewEventRing(4, g)

	if _, ok := r.Dequeue(); ok {
		t.Fatal("dequeue succeeded on empty ring")
	}
	r.Len()
	r.IsEmpty()
	r.IsFull()
	r.Cap()

	if calls := g.Calls(); len(calls) != 0 {
		t.Errorf("reads produced guard traffic: %v", calls)
	}
}

func TestRing_SentinelRejectionTakesNoGuard(t *testing.T) {
	g := fake.NewGuard()
	r := NewEventRing(4, g)
	r.Enqueue(300, 0)
	g.Reset()

	if r.Enqueue(api.EventNone, 0) {
		t.Fatal("sentinel accepted")
	}
	if calls := g.Calls(); len(calls) != 0 {
		t.Errorf("sentinel rejection produced guard traffic: %v", calls)
	}
}

func TestSpinGuard_MutualExclusion(t *testing.T) {
	g := NewSpinGuard()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10000; j++ {
				prev := g.Mask()
				counter++
				g.Restore(prev)
			}
		}()
	}
	wg.Wait()
	if counter != 80000 {
		t.Errorf("counter = %d, want 80000; guard failed to serialize", counter)
	}
}

func TestSpinGuard_UnmaskReleases(t *testing.T) {
	g := NewSpinGuard()
	g.Mask()
	g.Unmask()
	// Reacquirable after an unconditional release.
	done := make(chan struct{})
	go func() {
		prev := g.Mask()
		g.Restore(prev)
		close(done)
	}()
	<-done
}

func TestNopGuard_AllowsSingleContextUse(t *testing.T) {
	r := NewEventRing(4, NopGuard{})
	if !r.Enqueue(300, 1) {
		t.Fatal("enqueue failed under NopGuard")
	}
	if ev, ok := r.Dequeue(); !ok || ev.Param != 1 {
		t.Fatalf("dequeue = (%+v,%v)", ev, ok)
	}
}
