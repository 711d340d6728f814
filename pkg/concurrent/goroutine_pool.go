package concurrent

import (
	"errors"
	"sync"
	"time"
)

var ErrScheduleTimeout = errors.New("schedule error: timed out")

/*
GoroutinePool runs short tasks on at most size goroutines. A worker that
finishes its task keeps taking queued tasks until the pool is closed, so a busy
pool does not pay for a new goroutine per task.
*/
type GoroutinePool struct {
	sem  chan struct{}
	work chan func()
	quit chan struct{}
	once sync.Once
}

func NewGoroutinePool(size, queue int) *GoroutinePool {
	if size < 1 {
		size = 1
	}
	if queue < 0 {
		queue = 0
	}
	return &GoroutinePool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
		quit: make(chan struct{}),
	}
}

// Spawn starts n idle workers ahead of the first task.
func (p *GoroutinePool) Spawn(n int) {
	n = min(n, cap(p.sem))
	for i := 0; i < n; i++ {
		p.sem <- struct{}{}
		go p.worker(func() {})
	}
}

// Schedule blocks until a worker or a queue slot takes task.
func (p *GoroutinePool) Schedule(task func()) {
	_ = p.schedule(task, nil)
}

func (p *GoroutinePool) ScheduleTimeout(timeout time.Duration, task func()) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	return p.schedule(task, timer.C)
}

func (p *GoroutinePool) schedule(task func(), timeout <-chan time.Time) error {
	select {
	case <-timeout:
		return ErrScheduleTimeout
	case p.work <- task:
		return nil
	case p.sem <- struct{}{}:
		go p.worker(task)
		return nil
	}
}

func (p *GoroutinePool) worker(task func()) {
	defer func() { <-p.sem }()

	task()
	for {
		select {
		case task := <-p.work:
			task()
		case <-p.quit:
			return
		}
	}
}

// Close stops idle workers. Tasks already running finish first.
func (p *GoroutinePool) Close() {
	p.once.Do(func() { close(p.quit) })
}
