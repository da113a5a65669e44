package usecase

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSearchSession_Transitions(t *testing.T) {
	s := NewSearchSession()

	if s.InProgress("client-a") {
		t.Fatal("expected no search in progress initially")
	}
	if !s.TryStart("client-a") {
		t.Fatal("first TryStart should succeed")
	}
	if s.TryStart("client-a") {
		t.Error("second TryStart for same client should be rejected")
	}
	if !s.TryStart("client-b") {
		t.Error("other clients are independent")
	}
	if got := s.Active(); got != 2 {
		t.Errorf("Active() = %d, want 2", got)
	}

	s.Finish("client-a")

	if s.InProgress("client-a") {
		t.Error("expected search finished")
	}
	if !s.TryStart("client-a") {
		t.Error("TryStart after Finish should succeed")
	}
}

func TestSearchSession_ConcurrentStartsAdmitOne(t *testing.T) {
	s := NewSearchSession()
	var started int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryStart("same") {
				atomic.AddInt32(&started, 1)
			}
		}()
	}
	wg.Wait()

	if started != 1 {
		t.Errorf("expected exactly 1 start, got %d", started)
	}
}
