package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tacogips/xtinspect/internal/config"
	"github.com/tacogips/xtinspect/internal/debug"
	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/scanner"
)

// DefaultWatchInterval is the rescan period used when none is given.
const DefaultWatchInterval = 2 * time.Second

// WatchOptions contains options for rescanning roots until cancelled.
type WatchOptions struct {
	// Config supplies scanner settings. Nil means the defaults.
	Config *config.Config
	// Roots replaces the configured roots when non-empty.
	Roots []string
	// Interval is the rescan period. Zero means DefaultWatchInterval.
	Interval time.Duration
	// OnChange receives the first inventory and every later one whose
	// fingerprint differs from the last delivered.
	OnChange func(*inventory.Inventory)
}

// WatchTemplates rescans the roots every interval until ctx is done. A
// rescan still running when the next one starts is abandoned, so a slow
// scan never delivers an inventory older than a later one. It returns nil
// when ctx ends.
func WatchTemplates(ctx context.Context, opts WatchOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	roots, err := scanRoots(cfg, opts.Roots)
	if err != nil {
		return err
	}
	s, err := NewScanner(cfg)
	if err != nil {
		return err
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	type outcome struct {
		seq int
		inv *inventory.Inventory
		err error
	}

	refresher := scanner.NewRefresher(s)
	results := make(chan outcome)
	var wg sync.WaitGroup
	defer func() {
		refresher.Cancel()
		wg.Wait()
	}()

	// Cancelled before the wait above, so no refresh blocks on results.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	seq := 0
	launch := func() {
		seq++
		n := seq
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, err := refresher.Refresh(ctx, roots)
			select {
			case results <- outcome{seq: n, inv: inv, err: err}:
			case <-ctx.Done():
			}
		}()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	debug.Debug("[app] Watching %d roots every %s", len(roots), interval)
	launch()

	delivered := 0
	last := ""
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			launch()
		case res := <-results:
			if errors.Is(res.err, scanner.ErrSuperseded) || res.seq < delivered {
				continue
			}
			if res.err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return NewScanError("watch interrupted", res.err)
			}
			delivered = res.seq
			fp := res.inv.Fingerprint()
			if fp == last {
				continue
			}
			debug.Debug("[app] Inventory changed: %s", fp)
			last = fp
			if opts.OnChange != nil {
				opts.OnChange(res.inv)
			}
		}
	}
}
