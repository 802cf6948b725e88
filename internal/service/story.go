package service

import (
	"context"
	"log/slog"

	"storyfeed/internal/api"
	"storyfeed/internal/domain"
)

// StoryService runs the story flows that bypass the cache: the
// geo-tagged story set and new story submission.
type StoryService struct {
	api     StoryAPI
	session SessionStore
	logger  *slog.Logger
}

func NewStoryService(api StoryAPI, session SessionStore, logger *slog.Logger) *StoryService {
	return &StoryService{
		api:     api,
		session: session,
		logger:  logger.With("component", "story"),
	}
}

// StoriesWithLocation fetches the geo-tagged stories for the map view.
func (s *StoryService) StoriesWithLocation(ctx context.Context) <-chan domain.Result[[]domain.Story] {
	out := make(chan domain.Result[[]domain.Story], 2)
	go func() {
		defer close(out)
		out <- domain.Loading[[]domain.Story]()

		sess, err := s.session.Load()
		if err != nil {
			out <- domain.Failure[[]domain.Story](errorMessage(err))
			return
		}
		if !sess.IsLoggedIn || sess.Token == "" {
			out <- domain.Failure[[]domain.Story](domain.ErrNotLoggedIn.Error())
			return
		}

		resp, err := s.api.StoriesWithLocation(ctx, sess.Token)
		if err != nil {
			out <- domain.Failure[[]domain.Story](errorMessage(err))
			return
		}
		if resp.Error {
			out <- domain.Failure[[]domain.Story](resp.Message)
			return
		}
		out <- domain.Success(api.MapStories(resp.ListStory))
	}()
	return out
}

// Post re-encodes the photo as a capped JPEG and submits it with its
// description and optional coordinates.
func (s *StoryService) Post(ctx context.Context, photo []byte, description string, lat, lon *float64) <-chan domain.Result[domain.Ack] {
	out := make(chan domain.Result[domain.Ack], 2)
	go func() {
		defer close(out)
		out <- domain.Loading[domain.Ack]()

		encoded, err := reencodeJPEG(photo)
		if err != nil {
			out <- domain.Failure[domain.Ack](errorMessage(err))
			return
		}

		sess, err := s.session.Load()
		if err != nil {
			out <- domain.Failure[domain.Ack](errorMessage(err))
			return
		}
		if !sess.IsLoggedIn || sess.Token == "" {
			out <- domain.Failure[domain.Ack](domain.ErrNotLoggedIn.Error())
			return
		}

		resp, err := s.api.PostStory(ctx, sess.Token, encoded, "photo.jpg", description, lat, lon)
		if err != nil {
			out <- domain.Failure[domain.Ack](errorMessage(err))
			return
		}
		if resp.Error {
			out <- domain.Failure[domain.Ack](resp.Message)
			return
		}

		s.logger.Info("story posted", "bytes", len(encoded))
		out <- domain.Success(domain.Ack{Message: resp.Message})
	}()
	return out
}
