// Package decode implements the bounded worker pool that turns scanned file
// paths into in-memory bitmaps off the interactive thread. Workers pull tasks
// in submission order but may complete them out of order; restoring scan
// order is the layout engine's job.
package decode

import (
	"runtime"
	"sync"

	"refboard/internal/cache"
	"refboard/internal/model"
)

// Worker pool limits. The pool is deliberately small: each in-flight decode
// holds one bitmap buffer, so the worker count bounds peak memory.
const (
	DefaultWorkers = 4
	MaxWorkers     = 8
)

// Task is one file to decode. Results are delivered to the task's own
// channel so concurrent jobs stay independent.
type Task struct {
	JobID   string
	Index   int
	Source  model.ImagePath
	Results chan<- model.DecodeResult
}

// Pool is a fixed-size decode worker pool shared by all ingestion jobs.
type Pool struct {
	tasks         chan Task
	wg            sync.WaitGroup
	uniformHeight int
	images        *cache.LRU
	closeOnce     sync.Once
}

// NewPool creates and starts a pool. workers is clamped to [1, MaxWorkers];
// pass 0 for the default (DefaultWorkers, capped by GOMAXPROCS). images may
// be nil to disable caching.
func NewPool(workers, uniformHeight int, images *cache.LRU) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
		if n := runtime.GOMAXPROCS(0); n < workers {
			workers = n
		}
	}
	if workers < 1 {
		workers = 1
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	p := &Pool{
		tasks:         make(chan Task, workers*2),
		uniformHeight: uniformHeight,
		images:        images,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit enqueues a task. Blocks while all workers are busy and the queue is
// full; callers submit from a job goroutine, never the interactive thread.
func (p *Pool) Submit(t Task) {
	p.tasks <- t
}

// Close stops accepting tasks and waits for in-flight decodes to finish.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for t := range p.tasks {
		result := model.DecodeResult{
			JobID:  t.JobID,
			Index:  t.Index,
			Source: t.Source,
		}

		if img := p.cached(t.Source.Path); img != nil {
			result.Image = img
		} else {
			img, err := DecodeFile(t.Source, p.uniformHeight)
			if err != nil {
				result.Err = err
			} else {
				result.Image = img
				if p.images != nil {
					p.images.Put(t.Source.Path, img)
				}
			}
		}

		t.Results <- result
	}
}

func (p *Pool) cached(path string) *model.DecodedImage {
	if p.images == nil {
		return nil
	}
	return p.images.Get(path)
}
