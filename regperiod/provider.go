/*
provider.go - Pattern expansion, caching, and window queries

PURPOSE:
  Expands the configured patterns into the concrete window collection and
  answers the one query view code needs: which windows can a producer (or
  compliance scheme) currently see.

EXPANSION:
  Per pattern, iterate registration years from the initial year to the
  final year (explicit, or derived from the current year and the most
  negative opening offset so look-ahead windows are always generated).
  Every (pattern, year) pair materializes one Window per template. The
  duplicate-year invariant is checked before each year is processed.

CACHING:
  Expansion is cached and rebuilt lazily, under a mutex with a
  double-checked staleness test, when the wall-clock year has advanced
  strictly past the year recorded at the last build. Concurrent requests
  crossing a year boundary must neither race to rebuild redundantly nor
  observe a half-built collection.

QUERY:
  ActiveWindows(isCso) filters to the matching scheme flag and drops
  windows that have not opened yet. Closed windows stay visible - late
  registration is allowed - and results are ordered newest year first.

SEE ALSO:
  - types.go: Pattern and template definitions
  - errors.go: Duplicate-year configuration error
*/
package regperiod

import (
	"sort"
	"sync"

	"github.com/packlane/compliance-engine/clock"
)

// Provider owns the expanded window collection. Construct one at startup
// and inject it wherever windows are queried; it is safe for concurrent
// use.
type Provider struct {
	patterns []Pattern
	clock    clock.Clock

	mu            sync.RWMutex
	windows       []Window
	lastBuiltYear int
}

// NewProvider expands the patterns eagerly so configuration errors surface
// at startup rather than on the first request.
func NewProvider(patterns []Pattern, c clock.Clock) (*Provider, error) {
	p := &Provider{patterns: patterns, clock: c}
	if err := p.rebuildLocked(c.Now().Year()); err != nil {
		return nil, err
	}
	return p, nil
}

// Windows returns the full expanded collection, rebuilding first if the
// current year has advanced past the year of the last build.
func (p *Provider) Windows() ([]Window, error) {
	year := p.clock.Now().Year()

	p.mu.RLock()
	stale := year > p.lastBuiltYear
	windows := p.windows
	p.mu.RUnlock()

	if !stale {
		return windows, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// Re-check: another request may have rebuilt while we waited.
	if year > p.lastBuiltYear {
		if err := p.rebuildLocked(year); err != nil {
			return nil, err
		}
	}
	return p.windows, nil
}

// ActiveWindows returns the windows a caller on the given journey side may
// act on: matching scheme flag, already opened (late and closed windows
// included), newest registration year first.
func (p *Provider) ActiveWindows(isCso bool) ([]Window, error) {
	windows, err := p.Windows()
	if err != nil {
		return nil, err
	}

	now := p.clock.Now()
	var active []Window
	for _, w := range windows {
		if w.IsCso != isCso {
			continue
		}
		if w.StatusAt(now) == PriorToOpening {
			continue
		}
		active = append(active, w)
	}
	return active, nil
}

// rebuildLocked expands all patterns. Callers must hold the write lock
// (or be the constructor, before the provider is shared).
func (p *Provider) rebuildLocked(currentYear int) error {
	windows, err := expand(p.patterns, currentYear)
	if err != nil {
		return err
	}
	p.windows = windows
	p.lastBuiltYear = currentYear
	return nil
}

// expand materializes every pattern across its year span, enforcing the
// one-pattern-per-year invariant.
func expand(patterns []Pattern, currentYear int) ([]Window, error) {
	producedBy := make(map[int]string)
	var windows []Window

	for _, pattern := range patterns {
		final := pattern.finalYear(currentYear)
		for year := pattern.InitialRegistrationYear; year <= final; year++ {
			if existing, ok := producedBy[year]; ok {
				return nil, &DuplicateYearError{
					Year:            year,
					Pattern:         pattern.Name,
					ExistingPattern: existing,
				}
			}
			producedBy[year] = pattern.Name

			for _, template := range pattern.Windows {
				windows = append(windows, newWindow(template, year))
			}
		}
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].RegistrationYear > windows[j].RegistrationYear
	})
	return windows, nil
}
