package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunDailyAtRunsTaskOnFirstBoundary(t *testing.T) {
	first := make(chan time.Time, 1)
	done := make(chan struct{})
	defer close(done)

	ran := make(chan struct{}, 1)
	go runDailyAt(first, time.Hour, done, func() {
		ran <- struct{}{}
	})

	// The task must run at the first boundary itself, not one interval
	// after it.
	first <- time.Now()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run at the first boundary")
	}
}

func TestRunDailyAtStopsOnDone(t *testing.T) {
	first := make(chan time.Time)
	done := make(chan struct{})

	ran := make(chan struct{}, 1)
	finished := make(chan struct{})
	go func() {
		runDailyAt(first, time.Hour, done, func() {
			ran <- struct{}{}
		})
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after done closed")
	}
	assert.Empty(t, ran)
}

func TestRunDailyAtKeepsTickingAfterFirstRun(t *testing.T) {
	first := make(chan time.Time, 1)
	done := make(chan struct{})
	defer close(done)

	ran := make(chan struct{}, 4)
	go runDailyAt(first, 5*time.Millisecond, done, func() {
		ran <- struct{}{}
	})

	first <- time.Now()
	for i := 0; i < 2; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("expected boundary run followed by a tick run")
		}
	}
}
