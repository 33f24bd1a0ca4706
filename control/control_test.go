// ════════════════════════════════════════════════════════════════════════════════════════════════
// 🧪 TEST SUITE: HARNESS CONTROL
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Covers the stop flag lifecycle, contender accounting under concurrency,
// and the zero-allocation property of every accessor.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package control

import (
	"sync"
	"testing"
)

func resetState() {
	Reset()
	for Active() > 0 {
		Leave()
	}
}

// ============================================================================
// UNIT TESTS - SHUTDOWN
// ============================================================================

func TestControl_Shutdown(t *testing.T) {
	resetState()

	if Stopped() {
		t.Fatal("stop flag should start lowered")
	}
	if !Shutdown() {
		t.Fatal("first Shutdown should report that it raised the flag")
	}
	if !Stopped() {
		t.Fatal("Stopped should be true after Shutdown")
	}
	if Shutdown() {
		t.Fatal("second Shutdown should report false")
	}

	Reset()
	if Stopped() {
		t.Fatal("Reset should lower the flag")
	}
}

func TestControl_ConcurrentShutdownRaisesOnce(t *testing.T) {
	resetState()

	const callers = 16
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		raised int
		start  = make(chan struct{})
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if Shutdown() {
				mu.Lock()
				raised++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	if raised != 1 {
		t.Fatalf("flag raised by %d callers, want 1", raised)
	}
}

// ============================================================================
// UNIT TESTS - ACCOUNTING
// ============================================================================

func TestControl_EnterLeave(t *testing.T) {
	resetState()

	if !Enter() || !Enter() {
		t.Fatal("Enter failed while running")
	}
	if got := Active(); got != 2 {
		t.Fatalf("Active = %d, want 2", got)
	}
	Leave()
	Leave()
	Leave() // extra Leave must not wrap
	if got := Active(); got != 0 {
		t.Fatalf("Active = %d, want 0", got)
	}
}

func TestControl_EnterAfterShutdown(t *testing.T) {
	resetState()
	Shutdown()
	if Enter() {
		t.Fatal("Enter should fail after Shutdown")
	}
	if Active() != 0 {
		t.Fatal("failed Enter changed the count")
	}
	Reset()
}

func TestControl_ConcurrentAccounting(t *testing.T) {
	resetState()

	const (
		workers = 8
		rounds  = 2_000
	)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				if Enter() {
					Leave()
				}
			}
		}()
	}
	wg.Wait()

	if got := Active(); got != 0 {
		t.Fatalf("Active = %d after balanced Enter/Leave, want 0", got)
	}
}

// ============================================================================
// MEMORY VALIDATION
// ============================================================================

func TestControl_ZeroAllocations(t *testing.T) {
	resetState()

	functions := []struct {
		name string
		fn   func()
	}{
		{"Stopped", func() { Stopped() }},
		{"EnterLeave", func() { Enter(); Leave() }},
		{"Active", func() { Active() }},
		{"ShutdownReset", func() { Shutdown(); Reset() }},
	}
	for _, test := range functions {
		if allocs := testing.AllocsPerRun(100, test.fn); allocs > 0 {
			t.Errorf("%s allocated memory: %.2f allocs/op", test.name, allocs)
		}
	}
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkControl_Stopped(b *testing.B) {
	resetState()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Stopped()
	}
}

func BenchmarkControl_EnterLeaveParallel(b *testing.B) {
	resetState()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			Enter()
			Leave()
		}
	})
}
