package spinlock

import (
	"sync"
	"testing"

	"embd/atomics"
)

// TestMutualExclusion drives a non-atomic counter from several goroutines
// under the lock. Any overlap of critical sections shows up as a lost
// increment (and as a report under -race).
func TestMutualExclusion(t *testing.T) {
	const (
		workers = 8
		rounds  = 5_000
	)
	l := new(Spinlock)
	l.InitWith(atomics.HostBackend{}, 64)

	var (
		counter  int
		inside   int32
		overlaps int
		wg       sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for done := 0; done < rounds; {
				if !l.TryAcquire() {
					continue
				}
				inside++
				if inside != 1 {
					overlaps++
				}
				counter++
				inside--
				l.Release()
				done++
			}
		}()
	}
	wg.Wait()

	if overlaps != 0 {
		t.Fatalf("%d overlapping critical sections", overlaps)
	}
	if counter != workers*rounds {
		t.Fatalf("counter = %d, want %d", counter, workers*rounds)
	}
}

// TestMutualExclusionUnderFaults repeats the counter run with every third
// reservation lost.
func TestMutualExclusionUnderFaults(t *testing.T) {
	const (
		workers = 4
		rounds  = 2_000
	)
	fb := atomics.NewFaultBackend(atomics.HostBackend{}, nil)
	l := new(Spinlock)
	l.InitWith(fb, 16)
	fb.Fail = atomics.FailEvery(3)

	var (
		counter int
		wg      sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for done := 0; done < rounds; {
				if l.Do(func() { counter++ }) {
					done++
				}
			}
		}()
	}
	wg.Wait()

	if counter != workers*rounds {
		t.Fatalf("counter = %d, want %d", counter, workers*rounds)
	}
	if fb.Injected() == 0 {
		t.Fatal("no faults injected")
	}
}
