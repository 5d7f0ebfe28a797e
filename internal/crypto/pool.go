package crypto

import "context"

// Pool runs hashing on a fixed set of worker goroutines so that one slow
// CPU-bound verification cannot head-of-line-block unrelated request
// goroutines. Submission honors context cancellation; a running job always
// finishes.
type Pool struct {
	salt []byte
	jobs chan func()
}

// NewPool starts workers goroutines sharing the configured salt.
func NewPool(salt []byte, workers int) *Pool {
	if workers <= 0 {
		workers = 4
	}
	p := &Pool{salt: salt, jobs: make(chan func())}
	for i := 0; i < workers; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for job := range p.jobs {
		job()
	}
}

// Close stops the workers once queued jobs drain.
func (p *Pool) Close() { close(p.jobs) }

// Hash computes the stored hash for a new credential off the caller's goroutine.
func (p *Pool) Hash(ctx context.Context, password string) ([]byte, error) {
	out := make(chan []byte, 1)
	err := p.submit(ctx, func() {
		out <- HashPassword([]byte(password), p.salt)
	})
	if err != nil {
		return nil, err
	}
	select {
	case h := <-out:
		return h, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Verify reports whether password matches the expected stored hash.
func (p *Pool) Verify(ctx context.Context, password string, expected []byte) (bool, error) {
	out := make(chan bool, 1)
	err := p.submit(ctx, func() {
		out <- VerifyPassword([]byte(password), p.salt, expected)
	})
	if err != nil {
		return false, err
	}
	select {
	case ok := <-out:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (p *Pool) submit(ctx context.Context, job func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
