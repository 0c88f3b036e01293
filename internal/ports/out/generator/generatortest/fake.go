// Package generatortest provides a scripted generator.Model for tests.
package generatortest

import (
	"context"
	"sync"
)

// Fake returns Responses in order, then repeats the last one. Err takes
// precedence over Responses when set.
type Fake struct {
	mu        sync.Mutex
	Responses []string
	Err       error

	// Block, when non-nil, makes Generate wait until it is closed or ctx ends.
	Block chan struct{}

	prompts []string
}

func (f *Fake) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	block := f.Block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) == 0 {
		return "", nil
	}
	i := min(len(f.prompts)-1, len(f.Responses)-1)
	return f.Responses[i], nil
}

// Calls returns how many times Generate was invoked.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// LastPrompt returns the most recent prompt, or "" if none.
func (f *Fake) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}
