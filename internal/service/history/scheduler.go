package history

import (
	"sync"
	"time"
)

// Scheduler runs f once after d. There is no cancellation: a task whose
// process goes away first is simply never observed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules on real timers and can wait for pending tasks.
type TimerScheduler struct {
	wg sync.WaitGroup
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (s *TimerScheduler) AfterFunc(d time.Duration, f func()) {
	s.wg.Add(1)
	time.AfterFunc(d, func() {
		defer s.wg.Done()
		f()
	})
}

// Wait blocks until every scheduled task has run.
func (s *TimerScheduler) Wait() {
	s.wg.Wait()
}
