package catalog

import (
	"sync"
	"sync/atomic"

	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/julienpequegnot/wayfare/internal/logging"
	"github.com/rs/zerolog"
)

// Pool memoizes the static content pool for the life of the process.
//
// The first successful load is kept; concurrent first callers may each load,
// and whichever stores first wins. Failed loads are not cached.
type Pool struct {
	loader Loader
	items  atomic.Pointer[[]content.Item]
	log    zerolog.Logger
}

func NewPool(loader Loader) *Pool {
	return &Pool{
		loader: loader,
		log:    logging.Component("catalog"),
	}
}

// Items returns the cached pool, loading it on first use. A load error is
// logged and yields an empty pool, as does a nil Pool.
func (p *Pool) Items() []content.Item {
	if p == nil {
		return nil
	}
	if cached := p.items.Load(); cached != nil {
		return *cached
	}

	items, err := p.loader.Load()
	if err != nil {
		p.log.Warn().Err(err).Msg("static catalog unavailable")
		return nil
	}

	if !p.items.CompareAndSwap(nil, &items) {
		return *p.items.Load()
	}
	p.log.Debug().Int("items", len(items)).Msg("static catalog loaded")
	return items
}

// Loaded reports whether the pool has been populated.
func (p *Pool) Loaded() bool {
	if p == nil {
		return false
	}
	return p.items.Load() != nil
}

var (
	defaultMu    sync.Mutex
	defaultPools = map[string]*Pool{}
)

// Default returns the process-wide pool for the catalog file at path.
func Default(path string) *Pool {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if p, ok := defaultPools[path]; ok {
		return p
	}
	p := NewPool(FileLoader{Path: path})
	defaultPools[path] = p
	return p
}
