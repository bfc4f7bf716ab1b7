package funnel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain/catalog"
)

const catalogTimeout = 5 * time.Second

// CatalogReader serves the excursion catalog. *application.CatalogService
// satisfies it.
type CatalogReader interface {
	ExcursionSpots(ctx context.Context) []string
	Excursions(ctx context.Context, spot string) []catalog.Excursion
}

// ExcursionBrowser holds one visitor's position in the excursion catalog:
// the spot list, the currently selected spot, and its excursions. Spot
// switches load in the background; a switch that lands after a newer one
// is discarded.
type ExcursionBrowser struct {
	mu sync.Mutex

	spots      []string
	selected   string
	excursions []catalog.Excursion
	loading    bool
	// loadSeq increments on every selection change, so a slow fetch for an
	// abandoned spot cannot overwrite the current one.
	loadSeq uint64

	reader CatalogReader
	logger *zap.Logger
}

// NewExcursionBrowser creates a browser with nothing loaded yet.
func NewExcursionBrowser(reader CatalogReader, logger *zap.Logger) *ExcursionBrowser {
	return &ExcursionBrowser{reader: reader, logger: logger}
}

// BrowserSnapshot is a point-in-time copy of the browser for rendering.
type BrowserSnapshot struct {
	Spots      []string            `json:"spots"`
	Selected   string              `json:"selected"`
	Excursions []catalog.Excursion `json:"excursions"`
	Loading    bool                `json:"loading"`
}

// Snapshot returns a copy of the current browser state.
func (b *ExcursionBrowser) Snapshot() BrowserSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	spots := make([]string, len(b.spots))
	copy(spots, b.spots)
	excursions := make([]catalog.Excursion, len(b.excursions))
	copy(excursions, b.excursions)
	return BrowserSnapshot{
		Spots:      spots,
		Selected:   b.selected,
		Excursions: excursions,
		Loading:    b.loading,
	}
}

// Load fetches the spot list and auto-selects the first spot, loading its
// excursions synchronously. An empty catalog leaves everything empty.
func (b *ExcursionBrowser) Load(ctx context.Context) {
	spots := b.reader.ExcursionSpots(ctx)

	b.mu.Lock()
	b.spots = spots
	b.loadSeq++
	b.excursions = nil
	if len(spots) == 0 {
		b.selected = ""
		b.mu.Unlock()
		return
	}
	b.selected = spots[0]
	spot := b.selected
	b.mu.Unlock()

	excursions := b.reader.Excursions(ctx, spot)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.selected == spot {
		b.excursions = excursions
	}
}

// Select switches to the given spot and loads its excursions in the
// background.
func (b *ExcursionBrowser) Select(spot string) {
	b.mu.Lock()
	if spot == b.selected {
		b.mu.Unlock()
		return
	}
	b.selected = spot
	b.excursions = nil
	b.loading = true
	b.loadSeq++
	seq := b.loadSeq
	b.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()

		excursions := b.reader.Excursions(ctx, spot)

		b.mu.Lock()
		defer b.mu.Unlock()
		if b.loadSeq != seq {
			// A newer selection superseded this fetch.
			return
		}
		b.excursions = excursions
		b.loading = false
	}()
}
