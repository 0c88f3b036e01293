package httpapi

import (
	"context"
	"sync"
)

// inFlight admits one generation per session at a time.
type inFlight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInFlight() *inFlight {
	return &inFlight{active: make(map[string]struct{})}
}

// acquire reports whether key was free. The caller must call the returned
// release func exactly once when ok is true.
func (f *inFlight) acquire(key string) (release func(), ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.active[key]; busy {
		return nil, false
	}
	f.active[key] = struct{}{}
	return func() {
		f.mu.Lock()
		delete(f.active, key)
		f.mu.Unlock()
	}, true
}

// keyLocks serializes work per key. Later callers wait for the holder to
// finish instead of being turned away.
type keyLocks struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func newKeyLocks() *keyLocks {
	return &keyLocks{held: make(map[string]chan struct{})}
}

// lock blocks until key is free or ctx ends. On success the caller must call
// unlock exactly once.
func (l *keyLocks) lock(ctx context.Context, key string) (unlock func(), err error) {
	for {
		l.mu.Lock()
		done, busy := l.held[key]
		if !busy {
			done = make(chan struct{})
			l.held[key] = done
			l.mu.Unlock()
			return func() {
				l.mu.Lock()
				delete(l.held, key)
				l.mu.Unlock()
				close(done)
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
