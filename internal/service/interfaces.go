package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"storyfeed/internal/api"
	"storyfeed/internal/domain"
	"storyfeed/internal/feed"
)

type StoryAPI interface {
	Register(ctx context.Context, name, email, password string) (*api.Envelope, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	StoriesWithLocation(ctx context.Context, token string) (*api.StoriesResponse, error)
	PostStory(ctx context.Context, token string, photo []byte, filename, description string, lat, lon *float64) (*api.Envelope, error)
}

type SessionStore interface {
	Load() (domain.Session, error)
	Save(sess domain.Session) error
	Clear() error
}

type Publisher interface {
	Publish(ctx context.Context, story *domain.Story) error
	Close() error
}

// FeedWindow is the slice of the pager the watcher drives.
type FeedWindow interface {
	Refresh(ctx context.Context) (feed.LoadResult, error)
}
