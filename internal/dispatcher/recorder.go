package dispatcher

import (
	"context"
	"sync"
)

// RecorderProvider is a Provider double that records delivery attempts
// instead of performing network activity. Status and Err control what
// each Send reports; NotConfigured simulates a missing credential.
type RecorderProvider struct {
	Status        int
	Err           error
	NotConfigured bool

	mu    sync.Mutex
	calls []Email
}

func NewRecorderProvider(status int, err error) *RecorderProvider {
	return &RecorderProvider{Status: status, Err: err}
}

func (p *RecorderProvider) Name() string     { return "recorder" }
func (p *RecorderProvider) Configured() bool { return !p.NotConfigured }

func (p *RecorderProvider) Send(_ context.Context, email Email) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, email)
	if p.Err != nil {
		return 0, p.Err
	}
	return p.Status, nil
}

// Calls returns the recorded attempts in order.
func (p *RecorderProvider) Calls() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.calls))
	copy(out, p.calls)
	return out
}

func (p *RecorderProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
