package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"storyfeed/internal/api"
	"storyfeed/internal/domain"
)

type StorySource interface {
	FetchPage(ctx context.Context, token string, page, size int) ([]api.StoryItem, error)
}

type StoryStore interface {
	List(ctx context.Context) ([]domain.Story, error)
	InsertBatch(ctx context.Context, stories []domain.Story) error
	DeleteAll(ctx context.Context) error
}

type RemoteKeyStore interface {
	Get(ctx context.Context, storyID string) (*domain.RemoteKey, error)
	UpsertBatch(ctx context.Context, keys []domain.RemoteKey) error
	DeleteAll(ctx context.Context) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SessionStore interface {
	Load() (domain.Session, error)
}

// Loader is what the pager drives; satisfied by *Mediator.
type Loader interface {
	Load(ctx context.Context, loadType LoadType, state PagingState) (LoadResult, error)
}
