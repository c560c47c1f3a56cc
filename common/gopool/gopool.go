package gopool

import (
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Pool runs tasks on a bounded set of goroutines.
type Pool struct {
	pool *ants.Pool
}

// New returns a pool of size workers, one per CPU if size is not positive.
func New(size int) (*Pool, error) {
	if size < 1 {
		size = runtime.NumCPU()
	}
	pool, err := ants.NewPool(size, ants.WithExpiryDuration(5*time.Second))
	if err != nil {
		return nil, err
	}
	return &Pool{pool: pool}, nil
}

// Map calls fn for every index in [0, n) on the pool and waits until all
// calls have returned. Submission blocks while every worker is busy.
func (p *Pool) Map(n int, fn func(i int)) error {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			fn(i)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return err
		}
	}
	wg.Wait()
	return nil
}

func (p *Pool) Cap() int {
	return p.pool.Cap()
}

func (p *Pool) Release() {
	p.pool.Release()
}
