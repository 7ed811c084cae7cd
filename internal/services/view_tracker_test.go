package services

import (
	"sync"
	"testing"
)

func TestMarkSeen(t *testing.T) {
	tracker := NewViewTracker()

	if !tracker.MarkSeen("session-a", "SVC001") {
		t.Error("first sighting should return true")
	}
	if tracker.MarkSeen("session-a", "SVC001") {
		t.Error("repeat sighting should return false")
	}
	if !tracker.MarkSeen("session-b", "SVC001") {
		t.Error("another session should count independently")
	}
	if !tracker.MarkSeen("session-a", "SVC002") {
		t.Error("another benefit should count independently")
	}
}

func TestMarkSeenConcurrent(t *testing.T) {
	tracker := NewViewTracker()

	const goroutines = 50
	var wg sync.WaitGroup
	results := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- tracker.MarkSeen("session", "SVC001")
		}()
	}
	wg.Wait()
	close(results)

	firsts := 0
	for r := range results {
		if r {
			firsts++
		}
	}
	if firsts != 1 {
		t.Errorf("exactly one goroutine should win the first sighting, got %d", firsts)
	}
}
