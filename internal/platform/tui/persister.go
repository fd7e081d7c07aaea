package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

// GameSaver stores game snapshots under a slot.
type GameSaver interface {
	SaveGame(slot string, revision int64, state darts.GameState) (bool, error)
}

// Persister writes game snapshots in the background so the update loop
// never waits on the database. Only the newest pending snapshot is written;
// older ones are dropped. Every snapshot gets a revision one higher than the
// last, so a late write can never replace a newer save.
//
// A nil *Persister is valid and discards everything.
type Persister struct {
	saver  GameSaver
	slot   string
	logger *log.Logger

	mu       sync.Mutex
	revision int64
	pending  *darts.GameState
	pendRev  int64
	closed   bool

	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPersister starts a persister for slot. revision is the revision already
// stored for the slot, or 0. The worker stops when ctx is done or Close is
// called, writing any pending snapshot first.
func NewPersister(ctx context.Context, saver GameSaver, slot string, revision int64, logger *log.Logger) *Persister {
	if saver == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &Persister{
		saver:    saver,
		slot:     slot,
		logger:   logger,
		revision: revision,
		wake:     make(chan struct{}, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go p.run(ctx)
	return p
}

// Save queues state for writing and returns its revision.
func (p *Persister) Save(state darts.GameState) int64 {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return 0
	}
	p.revision++
	snapshot := state.Clone()
	p.pending = &snapshot
	p.pendRev = p.revision
	rev := p.revision
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return rev
}

// Revision returns the revision of the newest queued snapshot.
func (p *Persister) Revision() int64 {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.revision
}

// Slot returns the slot snapshots are written to.
func (p *Persister) Slot() string {
	if p == nil {
		return ""
	}
	return p.slot
}

// Close flushes the pending snapshot and stops the worker.
func (p *Persister) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.cancel()
	<-p.done
}

func (p *Persister) run(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.flush()
		case <-ctx.Done():
			p.flush()
			return
		}
	}
}

// flush writes the pending snapshot, if any.
func (p *Persister) flush() {
	p.mu.Lock()
	state, rev := p.pending, p.pendRev
	p.pending = nil
	p.mu.Unlock()

	if state == nil {
		return
	}

	saved, err := p.saver.SaveGame(p.slot, rev, *state)
	switch {
	case err != nil:
		if p.logger != nil {
			p.logger.Error("could not save game", "slot", p.slot, "revision", rev, "error", err)
		}
	case !saved:
		if p.logger != nil {
			p.logger.Warn("stale save ignored", "slot", p.slot, "revision", rev)
		}
	default:
		if p.logger != nil {
			p.logger.Debug("game saved", "slot", p.slot, "revision", rev)
		}
	}
}
