// ════════════════════════════════════════════════════════════════════════════════════════════════
// Contention Harness
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Races N contenders on one Spinlock or one 32-bit cell and checks the
// guarantees those primitives make, at a scale unit tests do not reach:
//
//   spinlock: no two contenders are ever inside the critical section at
//             once, and an unprotected counter bumped inside it ends equal
//             to the number of acquisitions.
//   cas:      a losing strong compare-exchange always reports a value
//             different from its expectation, and the final cell value
//             equals the number of winning exchanges.
//
// Each contender streams its acquire latencies through its own SPSC ring
// to one collector goroutine. The global control flag stops every
// contender between iterations when the context is cancelled.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package contention

import (
	"context"
	"runtime"
	"sync"
	"time"

	"embd/atomics"
	"embd/constants"
	"embd/control"
	"embd/debug"
	"embd/ring"
	"embd/spinlock"
	"embd/utils"
)

// Report is the outcome of one run.
type Report struct {
	Config     Config  `json:"config"`
	StartedAt  int64   `json:"started_unix_ns"`
	ElapsedNs  int64   `json:"elapsed_ns"`
	Successes  uint64  `json:"successes"`  // acquisitions or winning exchanges
	Failures   uint64  `json:"failures"`   // timeouts or losing exchanges
	Violations uint64  `json:"violations"` // broken exclusivity; must be 0
	Injected   uint64  `json:"injected"`   // reservations lost on purpose
	Dropped    uint64  `json:"dropped"`    // samples lost to a full ring
	Counter    uint64  `json:"counter"`
	CounterOK  bool    `json:"counter_ok"`
	Cancelled  bool    `json:"cancelled"`
	Latency    Summary `json:"latency"`
}

// OK reports whether the run upheld every checked property.
func (r *Report) OK() bool {
	return r.Violations == 0 && r.CounterOK
}

// tally is one contender's private counters, merged after the run.
type tally struct {
	successes  uint64
	failures   uint64
	violations uint64
	dropped    uint64
}

// shared is the state every contender races on.
type shared struct {
	lock    spinlock.Spinlock
	owner   atomics.Cell[uint32] // id of the contender inside the lock, 0 if none
	cell    atomics.Cell[uint32] // CAS mode target
	counter uint64               // guarded by lock
}

// Run executes one soak run and blocks until every contender has finished
// or ctx is cancelled. Only one Run may be active per process.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var be atomics.Backend = atomics.HostBackend{}
	if cfg.SingleCore {
		be = atomics.SingleCoreBackend{}
	}
	var fb *atomics.FaultBackend
	if cfg.FaultEvery > 0 {
		fb = atomics.NewFaultBackend(be, atomics.FailEvery(cfg.FaultEvery))
		be = fb
	}

	var st shared
	st.lock.InitWith(be, cfg.MaxSpin)
	st.owner.Init(be, 0)
	st.cell.Init(be, 0)

	control.Reset()
	stopWatch := make(chan struct{})
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		select {
		case <-ctx.Done():
			control.Shutdown()
		case <-stopWatch:
		}
	}()

	debug.DropMessage("contention", "run mode="+string(cfg.Mode)+
		" contenders="+utils.Itoa(cfg.Contenders)+
		" iterations="+utils.Itoa(cfg.Iterations))

	rings := make([]*ring.Ring, cfg.Contenders)
	tallies := make([]tally, cfg.Contenders)
	for i := range rings {
		rings[i] = ring.NewWith(atomics.HostBackend{}, constants.SampleRingSlots)
	}

	start := time.Now()
	var wg sync.WaitGroup
	allDone := make(chan struct{})
	for i := 0; i < cfg.Contenders; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			contend(&cfg, &st, id, rings[id], &tallies[id])
		}(i)
	}
	go func() {
		wg.Wait()
		close(allDone)
	}()

	samples := collect(rings, allDone, cfg.Contenders*cfg.Iterations)
	elapsed := time.Since(start)
	close(stopWatch)
	<-watchDone

	rep := &Report{
		Config:    cfg,
		StartedAt: start.UnixNano(),
		ElapsedNs: elapsed.Nanoseconds(),
		Cancelled: control.Stopped(),
		Latency:   Summarize(samples),
	}
	control.Reset()

	for i := range tallies {
		rep.Successes += tallies[i].successes
		rep.Failures += tallies[i].failures
		rep.Violations += tallies[i].violations
		rep.Dropped += tallies[i].dropped
	}
	if fb != nil {
		rep.Injected = fb.Injected()
	}

	switch cfg.Mode {
	case ModeSpinlock:
		rep.Counter = st.counter
		rep.CounterOK = st.counter == rep.Successes
	case ModeCAS:
		rep.Counter = uint64(st.cell.Load())
		rep.CounterOK = rep.Counter == rep.Successes&0xffff_ffff
	}

	if !rep.OK() {
		debug.DropLevel(debug.LevelWarn, "contention", "run broke exclusivity: violations="+
			utils.Utoa(rep.Violations)+" counter="+utils.Utoa(rep.Counter)+
			" successes="+utils.Utoa(rep.Successes))
	}
	return rep, nil
}

// contend is one contender's loop. Contender ids seen by the owner cell
// start at 1 so 0 can mean "free".
func contend(cfg *Config, st *shared, id int, out *ring.Ring, t *tally) {
	if !control.Enter() {
		return
	}
	defer control.Leave()

	if cfg.Pin {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := setAffinity(cfg.cpuFor(id)); err != nil {
			debug.DropError("contention: pin contender "+utils.Itoa(id), err)
		}
	}

	me := uint32(id + 1)
	for i := 0; i < cfg.Iterations && !control.Stopped(); i++ {
		t0 := time.Now()
		var won bool
		switch cfg.Mode {
		case ModeSpinlock:
			won = lockStep(st, me, t)
		case ModeCAS:
			won = casStep(st, t)
		}
		if !won {
			t.failures++
			continue
		}
		t.successes++
		if !out.Push(uint64(time.Since(t0))) {
			t.dropped++
		}
	}
}

func lockStep(st *shared, me uint32, t *tally) bool {
	if !st.lock.TryAcquire() {
		return false
	}
	expected := uint32(0)
	if !st.owner.CompareExchangeStrong(&expected, me) {
		t.violations++
	}
	st.counter++
	expected = me
	if !st.owner.CompareExchangeStrong(&expected, 0) {
		t.violations++
	}
	st.lock.Release()
	return true
}

func casStep(st *shared, t *tally) bool {
	cur := st.cell.LoadExplicit(atomics.Relaxed)
	expected := cur
	if st.cell.CompareExchangeStrong(&expected, cur+1) {
		return true
	}
	if expected == cur {
		t.violations++
	}
	return false
}

// collect drains every ring until the contenders are done, then once more,
// and returns the samples as float64 nanoseconds.
func collect(rings []*ring.Ring, done <-chan struct{}, hint int) []float64 {
	if hint > 1<<20 {
		hint = 1 << 20
	}
	samples := make([]float64, 0, hint)
	keep := func(v uint64) { samples = append(samples, float64(v)) }

	for {
		n := 0
		for _, r := range rings {
			n += r.Drain(keep)
		}
		select {
		case <-done:
			for _, r := range rings {
				r.Drain(keep)
			}
			return samples
		default:
		}
		if n == 0 {
			runtime.Gosched()
		}
	}
}
