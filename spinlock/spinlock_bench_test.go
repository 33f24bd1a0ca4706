package spinlock

import (
	"testing"

	"embd/atomics"
)

func BenchmarkUncontended(b *testing.B) {
	l := New(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.TryAcquire()
		l.Release()
	}
}

func BenchmarkUncontendedSingleCore(b *testing.B) {
	l := new(Spinlock)
	l.InitWith(atomics.SingleCoreBackend{}, 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.TryAcquire()
		l.Release()
	}
}

func BenchmarkTimeoutHeld(b *testing.B) {
	l := New(100)
	l.TryAcquire()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.TryAcquire()
	}
}

func BenchmarkContended(b *testing.B) {
	l := new(Spinlock)
	l.InitWith(atomics.HostBackend{}, 1000)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for !l.TryAcquire() {
			}
			l.Release()
		}
	})
}
