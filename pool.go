package gcdn

import "sync"

// Pool recycles scratch buffers so that GCDs over large operand sets can be
// computed without mutating the caller's slice and without allocating on
// every call. It is safe for concurrent use.
type Pool[T Unsigned] struct {
	pool            sync.Pool
	bufferSize      int
	maxRetainedSize int
}

// NewPool creates a new Pool with the given options.
func NewPool[T Unsigned](opts ...Option) (*Pool[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := &Pool[T]{
		bufferSize:      cfg.bufferSize,
		maxRetainedSize: cfg.maxRetainedSize,
	}
	p.pool.New = func() any {
		buf := make([]T, 0, p.bufferSize)
		return &buf
	}

	return p, nil
}

// GCD returns the greatest common divisor of xs. xs is copied into a pooled
// buffer first and is left untouched. An empty slice yields ErrNoOperands.
func (p *Pool[T]) GCD(xs []T) (T, error) {
	if len(xs) == 0 {
		return 0, ErrNoOperands
	}

	bp := p.get()
	buf := append((*bp)[:0], xs...)
	g := reduce(buf)
	p.put(bp, buf)

	return g, nil
}

// BufferSize returns the initial capacity of new scratch buffers.
func (p *Pool[T]) BufferSize() int {
	return p.bufferSize
}

// MaxRetainedSize returns the largest buffer capacity the pool keeps.
func (p *Pool[T]) MaxRetainedSize() int {
	return p.maxRetainedSize
}

func (p *Pool[T]) get() *[]T {
	return p.pool.Get().(*[]T) //nolint:forcetypeassert // only *[]T is ever stored
}

// put returns buf to the pool unless it grew past the retention limit.
func (p *Pool[T]) put(bp *[]T, buf []T) {
	if cap(buf) > p.maxRetainedSize {
		return
	}

	*bp = buf[:0]
	p.pool.Put(bp)
}
