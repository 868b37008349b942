package scanner

import (
	"context"
	"sync"

	"github.com/tacogips/xtinspect/internal/debug"
	"github.com/tacogips/xtinspect/internal/template/inventory"
)

// Refresher runs scans where a newer request cancels the one in flight.
// The superseded call returns ErrSuperseded instead of a stale Inventory.
type Refresher struct {
	scanner *Scanner

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewRefresher creates a Refresher backed by s.
func NewRefresher(s *Scanner) *Refresher {
	return &Refresher{scanner: s}
}

// Refresh scans roots, cancelling any refresh still running.
func (r *Refresher) Refresh(ctx context.Context, roots []string) (*inventory.Inventory, error) {
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.generation++
	gen := r.generation
	r.cancel = cancel
	r.mu.Unlock()

	inv, err := r.scanner.Scan(scanCtx, roots)

	r.mu.Lock()
	superseded := gen != r.generation
	if !superseded {
		r.cancel = nil
	}
	r.mu.Unlock()

	if superseded {
		debug.Debug("[scan] Refresh %d superseded", gen)
		return nil, ErrSuperseded
	}
	return inv, err
}

// Cancel stops the refresh in flight, if any.
func (r *Refresher) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
