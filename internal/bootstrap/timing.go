package bootstrap

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/tessera/internal/logging"
)

type phase struct {
	name string
	took time.Duration
}

// StartupTimer measures the phases of Run between the process start and
// the first frame. Each Mark closes the phase opened by the previous one.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark ends the running phase and files its duration under name. Marking a
// name twice keeps the later duration in its original position.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	took := now.Sub(t.last)
	t.last = now

	if i := t.index(name); i >= 0 {
		t.phases[i].took = took
		return
	}
	t.phases = append(t.phases, phase{name: name, took: took})
}

func (t *StartupTimer) index(name string) int {
	return slices.IndexFunc(t.phases, func(p phase) bool { return p.name == name })
}

// Phases lists phase names in first-marked order.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, len(t.phases))
	for i, p := range t.phases {
		names[i] = p.name
	}
	return names
}

func (t *StartupTimer) Duration(name string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.index(name); i >= 0 {
		return t.phases[i].took, true
	}
	return 0, false
}

// Log emits one debug line with every phase and the total.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.took)
	}
	event.Msg("startup timing")
}
