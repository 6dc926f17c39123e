package ad

// Per-goroutine tape store: each goroutine that differentiates
// gets its own GradientStructure, so multiple tapes can record
// simultaneously in parallel goroutines with no interaction and
// without the caller threading a context object through every
// call. Keyed by goroutine id via github.com/modern-go/gls.

import (
	"sync"

	"github.com/modern-go/gls"
)

type tapeStore struct {
	mu    sync.Mutex
	store map[int64]*GradientStructure
}

func newTapeStore() *tapeStore {
	return &tapeStore{store: map[int64]*GradientStructure{}}
}

var tapes = newTapeStore()

// goid reports the calling goroutine's id, used to key the
// per-goroutine tape.
func goid() int64 { return gls.GoID() }

func (s *tapeStore) get() *GradientStructure {
	id := goid()
	s.mu.Lock()
	t, ok := s.store[id]
	s.mu.Unlock()
	if !ok {
		t = NewGradientStructure()
		s.mu.Lock()
		s.store[id] = t
		s.mu.Unlock()
	}
	return t
}

func (s *tapeStore) drop() {
	id := goid()
	s.mu.Lock()
	delete(s.store, id)
	s.mu.Unlock()
}

// Tape returns the calling goroutine's GradientStructure,
// allocating one on first use.
func Tape() *GradientStructure { return tapes.get() }

// DropTape discards the calling goroutine's tape entirely,
// releasing it for garbage collection. A subsequent call to Tape
// allocates a fresh one.
func DropTape() { tapes.drop() }
