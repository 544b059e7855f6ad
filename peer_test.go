package gridlink

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPeerRef_ReleaseExactlyOnce(t *testing.T) {
	var released int32
	ref := NewPeerRef("p1", func() { atomic.AddInt32(&released, 1) })

	if err := ref.Release(); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := ref.Release(); !errors.Is(err, ErrAlreadyReleased) {
		t.Fatalf("second release: got %v, want ErrAlreadyReleased", err)
	}
	if n := atomic.LoadInt32(&released); n != 1 {
		t.Fatalf("release hook ran %d times, want 1", n)
	}
	if !ref.Released() {
		t.Fatalf("Released() = false after release")
	}
}

func TestPeerRef_CopiesShareReleaseState(t *testing.T) {
	var released int32
	ref := NewPeerRef("p1", func() { atomic.AddInt32(&released, 1) })
	cp := ref

	if err := cp.Release(); err != nil {
		t.Fatalf("release via copy: %v", err)
	}
	if err := ref.Release(); !errors.Is(err, ErrAlreadyReleased) {
		t.Fatalf("release via original after copy released: got %v, want ErrAlreadyReleased", err)
	}
	if n := atomic.LoadInt32(&released); n != 1 {
		t.Fatalf("release hook ran %d times, want 1", n)
	}
}

func TestPeerRef_ConcurrentReleaseRunsHookOnce(t *testing.T) {
	const n = 16

	var released int32
	ref := NewPeerRef("p1", func() { atomic.AddInt32(&released, 1) })

	start := make(chan struct{})
	var wg sync.WaitGroup
	var okCount int32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if err := ref.Release(); err == nil {
				atomic.AddInt32(&okCount, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if okCount != 1 {
		t.Fatalf("%d releases succeeded, want exactly 1", okCount)
	}
	if released != 1 {
		t.Fatalf("release hook ran %d times, want 1", released)
	}
}

func TestPeerRef_Zero(t *testing.T) {
	var ref PeerRef
	if !ref.IsZero() {
		t.Fatalf("zero ref IsZero() = false")
	}
	if ref.ID() != "" {
		t.Fatalf("zero ref ID() = %q, want empty", ref.ID())
	}
	// Liberar una referencia que nunca se usó es seguro.
	if err := ref.Release(); err != nil {
		t.Fatalf("release zero ref: %v", err)
	}
}

func TestPeerRef_ReleaseWithoutHook(t *testing.T) {
	ref := NewPeerRef("p1", nil)
	if err := ref.Release(); err != nil {
		t.Fatalf("release without hook: %v", err)
	}
}
