// Package semaphore runs background work on a bounded number of goroutines
// and hands the results back to the GTK main loop.
package semaphore

import (
	"context"
	"runtime"
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gtkpathbar/log"
	"golang.org/x/sync/semaphore"
)

var MaxWorkers = runtime.GOMAXPROCS(0)

var (
	sema     *semaphore.Weighted
	semaOnce sync.Once
)

func createSema() {
	semaOnce.Do(func() {
		sema = semaphore.NewWeighted(int64(MaxWorkers))
	})
}

// Go runs fn in a goroutine once a worker is free. It blocks until then, or
// until ctx is done, in which case fn is never run.
func Go(ctx context.Context, fn func()) bool {
	createSema()

	if err := sema.Acquire(ctx, 1); err != nil {
		log.Errorln("Semaphore: Failed to acquire shared semaphore:", err)
		return false
	}

	go func() {
		defer sema.Release(1)
		fn()
	}()

	return true
}

// Idle schedules fn on the main loop.
var Idle = func(fn func()) {
	glib.IdleAdd(fn)
}

// GoIdle runs work in the background, then calls the function it returns on
// the main loop. A nil return schedules nothing.
func GoIdle(ctx context.Context, work func() func()) bool {
	return Go(ctx, func() {
		if fn := work(); fn != nil {
			Idle(fn)
		}
	})
}
