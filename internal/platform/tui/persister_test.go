package tui

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

type savedSnapshot struct {
	slot     string
	revision int64
	turns    int
}

// fakeSaver records saves and can block them until released.
type fakeSaver struct {
	mu    sync.Mutex
	saves []savedSnapshot
	gate  chan struct{}
	err   error
}

func (f *fakeSaver) SaveGame(slot string, revision int64, state darts.GameState) (bool, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	f.saves = append(f.saves, savedSnapshot{slot: slot, revision: revision, turns: state.TurnCount()})
	return true, nil
}

func (f *fakeSaver) snapshots() []savedSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]savedSnapshot(nil), f.saves...)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func testGame(t *testing.T, mode darts.Mode, names ...string) darts.GameState {
	t.Helper()
	s, err := darts.NewGame(names, darts.Options{Mode: mode})
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return darts.StartGame(s)
}

func throwCurrent(t *testing.T, s darts.GameState, thrown int) darts.GameState {
	t.Helper()
	p, _ := s.CurrentPlayer()
	next, err := darts.Throw(s, p.ID, thrown)
	if err != nil {
		t.Fatalf("Throw(%d) failed: %v", thrown, err)
	}
	return next
}

func TestPersisterCloseFlushesNewest(t *testing.T) {
	saver := &fakeSaver{}
	p := NewPersister(context.Background(), saver, "slot", 0, discardLogger())

	s := testGame(t, darts.ModeRounds, "Ann", "Bob")
	for _, v := range []int{10, 20, 30} {
		s = throwCurrent(t, s, v)
		p.Save(s)
	}
	p.Close()

	saves := saver.snapshots()
	if len(saves) == 0 {
		t.Fatal("no snapshot was saved")
	}
	last := saves[len(saves)-1]
	if last.turns != 3 || last.revision != 3 {
		t.Errorf("last save = %+v, want 3 turns at revision 3", last)
	}
	for i := 1; i < len(saves); i++ {
		if saves[i].revision <= saves[i-1].revision {
			t.Errorf("revisions not increasing: %d then %d", saves[i-1].revision, saves[i].revision)
		}
	}
}

func TestPersisterCoalesces(t *testing.T) {
	saver := &fakeSaver{gate: make(chan struct{})}
	p := NewPersister(context.Background(), saver, "slot", 10, discardLogger())

	s := testGame(t, darts.ModeCountdown, "Ann", "Bob")
	s = throwCurrent(t, s, 60)
	p.Save(s)

	// The worker is held inside the saver; queue several more.
	for _, v := range []int{45, 26, 100} {
		s = throwCurrent(t, s, v)
		p.Save(s)
	}
	if got := p.Revision(); got != 14 {
		t.Errorf("Revision() = %d, want 14", got)
	}

	close(saver.gate)
	p.Close()

	saves := saver.snapshots()
	if len(saves) > 2 {
		t.Errorf("saved %d snapshots, want at most 2 after coalescing", len(saves))
	}
	last := saves[len(saves)-1]
	if last.revision != 14 || last.turns != 4 {
		t.Errorf("last save = %+v, want revision 14 with 4 turns", last)
	}
}

func TestPersisterStopsWithContext(t *testing.T) {
	saver := &fakeSaver{}
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPersister(ctx, saver, "slot", 0, discardLogger())

	p.Save(testGame(t, darts.ModeHighLow, "Ann", "Bob"))
	cancel()
	<-p.done

	if len(saver.snapshots()) != 1 {
		t.Errorf("saved %d snapshots, want 1", len(saver.snapshots()))
	}
	// Close after the context ended must not block.
	p.Close()
	if rev := p.Save(testGame(t, darts.ModeHighLow, "Ann", "Bob")); rev != 0 {
		t.Errorf("Save() after Close() = %d, want 0", rev)
	}
}

func TestPersisterSwallowsErrors(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	p := NewPersister(context.Background(), saver, "slot", 0, discardLogger())

	p.Save(testGame(t, darts.ModeCountdown, "Ann", "Bob"))
	p.Close()

	if len(saver.snapshots()) != 0 {
		t.Error("failed saves should not be recorded")
	}
}

func TestNilPersister(t *testing.T) {
	var p *Persister
	if rev := p.Save(darts.GameState{}); rev != 0 {
		t.Errorf("nil Save() = %d, want 0", rev)
	}
	p.Close()

	if NewPersister(context.Background(), nil, "slot", 0, nil) != nil {
		t.Error("NewPersister() without a saver should return nil")
	}
}
