package feed

import (
	"context"
	"log/slog"
	"sync"

	"storyfeed/internal/domain"
)

// Pager owns one feed window. It serializes load calls against the
// mediator (the mediator itself is not reentrant-safe), tracks the
// loaded pages and the anchor row, and hands the cache out as the
// single source of truth for rendering.
type Pager struct {
	mu       sync.Mutex
	loader   Loader
	store    StoryStore
	pageSize int
	logger   *slog.Logger

	pages      [][]domain.Story
	anchor     int
	endReached bool
	started    bool
}

func NewPager(loader Loader, store StoryStore, pageSize int, logger *slog.Logger) *Pager {
	return &Pager{
		loader:   loader,
		store:    store,
		pageSize: pageSize,
		logger:   logger.With("component", "pager"),
		anchor:   -1,
	}
}

// Refresh restarts the window from the current anchor. The first load
// on a fresh pager is always a refresh, matching how the window comes
// up on screen start.
func (p *Pager) Refresh(ctx context.Context) (LoadResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result, err := p.loader.Load(ctx, LoadRefresh, p.state())
	if err != nil {
		return LoadResult{}, err
	}

	p.pages = [][]domain.Story{result.Stories}
	p.anchor = -1
	p.endReached = result.EndOfPaginationReached
	p.started = true
	return result, nil
}

// Append extends the window forward. Once the end of pagination has
// been reached it answers without calling the mediator.
func (p *Pager) Append(ctx context.Context) (LoadResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureStarted(ctx); err != nil {
		return LoadResult{}, err
	}
	if p.endReached {
		return LoadResult{EndOfPaginationReached: true}, nil
	}

	result, err := p.loader.Load(ctx, LoadAppend, p.state())
	if err != nil {
		return LoadResult{}, err
	}

	if len(result.Stories) > 0 {
		p.pages = append(p.pages, result.Stories)
	}
	p.endReached = result.EndOfPaginationReached
	return result, nil
}

// Prepend extends the window backward from the first loaded row.
func (p *Pager) Prepend(ctx context.Context) (LoadResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureStarted(ctx); err != nil {
		return LoadResult{}, err
	}

	result, err := p.loader.Load(ctx, LoadPrepend, p.state())
	if err != nil {
		return LoadResult{}, err
	}

	if len(result.Stories) > 0 {
		p.pages = append([][]domain.Story{result.Stories}, p.pages...)
	}
	return result, nil
}

// SetAnchor records the row index the caller is currently looking at,
// so the next refresh lands on a sensible page.
func (p *Pager) SetAnchor(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.anchor = index
}

// EndReached reports whether forward pagination has been exhausted.
func (p *Pager) EndReached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.endReached
}

// Stories reads the cache, not the window: the cache is the single
// source of truth for rendering.
func (p *Pager) Stories(ctx context.Context) ([]domain.Story, error) {
	return p.store.List(ctx)
}

// ensureStarted runs the mandatory initial refresh before the first
// user-driven scroll load. Callers hold p.mu.
func (p *Pager) ensureStarted(ctx context.Context) error {
	if p.started {
		return nil
	}
	result, err := p.loader.Load(ctx, LoadRefresh, p.state())
	if err != nil {
		return err
	}
	p.pages = [][]domain.Story{result.Stories}
	p.endReached = result.EndOfPaginationReached
	p.started = true
	return nil
}

func (p *Pager) state() PagingState {
	return PagingState{
		Pages:       p.pages,
		AnchorIndex: p.anchor,
		PageSize:    p.pageSize,
	}
}
