package timer

import (
	"errors"
	"testing"
)

func counter() (*int, func()) {
	n := new(int)
	return n, func() { *n++ }
}

func TestNewRejectsBadArguments(t *testing.T) {
	if _, err := New(OneShot, nil); !errors.Is(err, ErrNilTask) {
		t.Fatalf("nil task: err = %v, want %v", err, ErrNilTask)
	}
	if _, err := New(Kind(7), func() {}); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("bad kind: err = %v, want %v", err, ErrInvalidKind)
	}
	tm, err := New(Periodic, func() {})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !tm.Stopped() || tm.Started() {
		t.Fatal("new timer should be stopped")
	}
}

func TestZeroTimerCannotStart(t *testing.T) {
	var tm Timer
	if err := tm.Start(10); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("err = %v, want %v", err, ErrNotInitialized)
	}
	tm.Stop()
	tm.Tick(1000)
	if tm.Started() || tm.Stopped() {
		t.Fatal("zero timer changed state")
	}
}

func TestOneShotFiresOnceAtInterval(t *testing.T) {
	n, task := counter()
	tm, _ := New(OneShot, task)
	if err := tm.Start(20); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 3; i++ {
		tm.Tick5ms()
	}
	if *n != 0 {
		t.Fatalf("fired after 15ms of a 20ms timer")
	}
	tm.Tick5ms()
	if *n != 1 {
		t.Fatalf("fired %d times at 20ms, want 1", *n)
	}
	if !tm.Stopped() {
		t.Fatal("one-shot should stop after expiry")
	}
	for i := 0; i < 10; i++ {
		tm.Tick5ms()
	}
	if *n != 1 {
		t.Fatalf("stopped one-shot fired again: %d", *n)
	}
}

func TestPeriodicRearms(t *testing.T) {
	n, task := counter()
	tm, _ := New(Periodic, task)
	tm.Start(100)

	for i := 0; i < 1000/10; i++ {
		tm.Tick10ms()
	}
	if *n != 10 {
		t.Fatalf("fired %d times in 1s at 100ms, want 10", *n)
	}
	if !tm.Started() {
		t.Fatal("periodic timer should stay started")
	}
}

func TestPeriodicStoppedByTask(t *testing.T) {
	var tm *Timer
	fired := 0
	tm, _ = New(Periodic, func() {
		fired++
		tm.Stop()
	})
	tm.Start(20)
	for i := 0; i < 10; i++ {
		tm.Tick20ms()
	}
	if fired != 1 || !tm.Stopped() {
		t.Fatalf("fired=%d stopped=%v, want 1 true", fired, tm.Stopped())
	}
}

func TestPeriodicRestartedByTask(t *testing.T) {
	var tm *Timer
	fired := 0
	tm, _ = New(Periodic, func() {
		fired++
		tm.Start(200)
	})
	tm.Start(100)
	tm.Tick100ms()
	if fired != 1 {
		t.Fatalf("fired %d, want 1", fired)
	}
	tm.Tick100ms()
	if fired != 1 {
		t.Fatal("new 200ms interval not honoured")
	}
	tm.Tick100ms()
	if fired != 2 {
		t.Fatalf("fired %d, want 2", fired)
	}
}

func TestRestartZeroesElapsed(t *testing.T) {
	n, task := counter()
	tm, _ := New(OneShot, task)
	tm.Start(1000)
	tm.Tick100ms()
	tm.Tick100ms()
	if got := tm.Elapsed(); got != 200 {
		t.Fatalf("Elapsed = %d, want 200", got)
	}
	tm.Start(300)
	if got := tm.Elapsed(); got != 0 {
		t.Fatalf("Elapsed after restart = %d, want 0", got)
	}
	tm.Tick100ms()
	tm.Tick100ms()
	tm.Tick100ms()
	if *n != 1 {
		t.Fatalf("fired %d, want 1", *n)
	}
}

func TestRewind(t *testing.T) {
	n, task := counter()
	tm, _ := New(OneShot, task)

	tm.Rewind() // stopped: no effect
	tm.Start(30)
	tm.Tick20ms()
	tm.Rewind()
	tm.Tick20ms()
	if *n != 0 {
		t.Fatal("rewound timer fired early")
	}
	if !tm.Started() {
		t.Fatal("Rewind stopped the timer")
	}
	tm.Tick20ms()
	if *n != 1 {
		t.Fatalf("fired %d, want 1", *n)
	}
}

func TestStopThenTick(t *testing.T) {
	n, task := counter()
	tm, _ := New(Periodic, task)
	tm.Start(5)
	tm.Stop()
	tm.Tick1s()
	if *n != 0 {
		t.Fatal("stopped timer fired")
	}
}

func TestZeroDurationFiresOnFirstTick(t *testing.T) {
	n, task := counter()
	tm, _ := New(OneShot, task)
	tm.Start(0)
	tm.Tick5ms()
	if *n != 1 {
		t.Fatalf("fired %d, want 1", *n)
	}
}

func TestInfiniteNeverExpires(t *testing.T) {
	n, task := counter()
	tm, _ := New(OneShot, task)
	tm.Start(DurationInfinite)
	for i := 0; i < 5_000_000; i++ {
		tm.Tick1s()
	}
	if *n != 0 {
		t.Fatal("infinite timer fired")
	}
	if got := tm.Elapsed(); got != DurationInfinite {
		t.Fatalf("Elapsed = %d, want saturation at %d", got, DurationInfinite)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{OneShot: "one-shot", Periodic: "periodic", Kind(9): "invalid"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
