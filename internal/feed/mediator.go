// Package feed holds the incremental-load coordinator: it bridges the
// paginated story API and the local cache so the cache always reflects
// one contiguous run of remote pages.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"storyfeed/internal/api"
	"storyfeed/internal/domain"
)

// InitialPageIndex is the first page of the remote run.
const InitialPageIndex = 1

// Mediator turns one load request into exactly one remote fetch and one
// atomic cache mutation. It never retries and never partially commits.
// Calls against the same window must be serialized by the caller; the
// Pager does that.
type Mediator struct {
	source  StorySource
	stories StoryStore
	keys    RemoteKeyStore
	tx      TransactionManager
	session SessionStore
	logger  *slog.Logger
}

func NewMediator(
	source StorySource,
	stories StoryStore,
	keys RemoteKeyStore,
	tx TransactionManager,
	session SessionStore,
	logger *slog.Logger,
) *Mediator {
	return &Mediator{
		source:  source,
		stories: stories,
		keys:    keys,
		tx:      tx,
		session: session,
		logger:  logger.With("component", "mediator"),
	}
}

// Load resolves the target page for the load type, fetches it with the
// stored session token and mutates the cache in one transaction. A
// missing continuation key in the requested direction ends pagination
// without touching the network.
func (m *Mediator) Load(ctx context.Context, loadType LoadType, state PagingState) (LoadResult, error) {
	page, endReached, err := m.resolvePage(ctx, loadType, state)
	if err != nil {
		return LoadResult{}, fmt.Errorf("resolve %s page: %w", loadType, err)
	}
	if endReached {
		return LoadResult{EndOfPaginationReached: true}, nil
	}

	sess, err := m.session.Load()
	if err != nil {
		return LoadResult{}, fmt.Errorf("load session: %w", err)
	}
	if !sess.IsLoggedIn || sess.Token == "" {
		return LoadResult{}, domain.ErrNotLoggedIn
	}

	items, err := m.source.FetchPage(ctx, sess.Token, page, state.PageSize)
	if err != nil {
		return LoadResult{}, fmt.Errorf("fetch page %d: %w", page, err)
	}

	end := len(items) == 0
	stories := api.MapStories(items)

	err = m.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if loadType == LoadRefresh {
			if err := m.keys.DeleteAll(txCtx); err != nil {
				return fmt.Errorf("delete remote keys: %w", err)
			}
			if err := m.stories.DeleteAll(txCtx); err != nil {
				return fmt.Errorf("delete stories: %w", err)
			}
		}

		var prevKey, nextKey *int
		if page != InitialPageIndex {
			p := page - 1
			prevKey = &p
		}
		if !end {
			n := page + 1
			nextKey = &n
		}

		keys := make([]domain.RemoteKey, 0, len(stories))
		for _, story := range stories {
			keys = append(keys, domain.RemoteKey{
				StoryID: story.ID,
				PrevKey: prevKey,
				NextKey: nextKey,
			})
		}
		if err := m.keys.UpsertBatch(txCtx, keys); err != nil {
			return fmt.Errorf("upsert remote keys: %w", err)
		}
		if err := m.stories.InsertBatch(txCtx, stories); err != nil {
			return fmt.Errorf("insert stories: %w", err)
		}
		return nil
	})
	if err != nil {
		return LoadResult{}, err
	}

	m.logger.Debug("load committed",
		"load_type", loadType.String(),
		"page", page,
		"stories", len(stories),
		"end_of_pagination", end,
	)

	return LoadResult{EndOfPaginationReached: end, Stories: stories}, nil
}

// resolvePage picks the remote page for a load type. The second return
// is true when pagination has ended in the requested direction and no
// fetch should happen.
func (m *Mediator) resolvePage(ctx context.Context, loadType LoadType, state PagingState) (int, bool, error) {
	switch loadType {
	case LoadRefresh:
		item := state.ClosestToAnchor()
		if item == nil {
			return InitialPageIndex, false, nil
		}
		key, err := m.keys.Get(ctx, item.ID)
		if err != nil {
			return 0, false, err
		}
		if key == nil || key.NextKey == nil {
			return InitialPageIndex, false, nil
		}
		return *key.NextKey - 1, false, nil

	case LoadPrepend:
		item := state.FirstItem()
		if item == nil {
			return 0, true, nil
		}
		key, err := m.keys.Get(ctx, item.ID)
		if err != nil {
			return 0, false, err
		}
		if key == nil || key.PrevKey == nil {
			return 0, true, nil
		}
		return *key.PrevKey, false, nil

	case LoadAppend:
		item := state.LastItem()
		if item == nil {
			return 0, true, nil
		}
		key, err := m.keys.Get(ctx, item.ID)
		if err != nil {
			return 0, false, err
		}
		if key == nil || key.NextKey == nil {
			return 0, true, nil
		}
		return *key.NextKey, false, nil

	default:
		return 0, false, fmt.Errorf("unknown load type %d", loadType)
	}
}
