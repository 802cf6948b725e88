package service

import (
	"context"
	"log/slog"

	"storyfeed/internal/domain"
)

// UserService runs the account flows. Every network-backed flow reports
// through a result channel: Loading first, then one terminal value.
type UserService struct {
	api     StoryAPI
	session SessionStore
	logger  *slog.Logger
}

func NewUserService(api StoryAPI, session SessionStore, logger *slog.Logger) *UserService {
	return &UserService{
		api:     api,
		session: session,
		logger:  logger.With("component", "user"),
	}
}

// Register creates a new account.
func (s *UserService) Register(ctx context.Context, name, email, password string) <-chan domain.Result[domain.Ack] {
	out := make(chan domain.Result[domain.Ack], 2)
	go func() {
		defer close(out)
		out <- domain.Loading[domain.Ack]()

		resp, err := s.api.Register(ctx, name, email, password)
		if err != nil {
			out <- domain.Failure[domain.Ack](errorMessage(err))
			return
		}
		if resp.Error {
			out <- domain.Failure[domain.Ack](resp.Message)
			return
		}
		out <- domain.Success(domain.Ack{Message: resp.Message})
	}()
	return out
}

// Login exchanges credentials for a token and persists the session on
// success.
func (s *UserService) Login(ctx context.Context, email, password string) <-chan domain.Result[domain.Session] {
	out := make(chan domain.Result[domain.Session], 2)
	go func() {
		defer close(out)
		out <- domain.Loading[domain.Session]()

		resp, err := s.api.Login(ctx, email, password)
		if err != nil {
			out <- domain.Failure[domain.Session](errorMessage(err))
			return
		}
		if resp.Error {
			out <- domain.Failure[domain.Session](resp.Message)
			return
		}
		if resp.LoginResult == nil {
			out <- domain.Failure[domain.Session](genericErrorMessage)
			return
		}

		sess := domain.Session{
			Name:  resp.LoginResult.Name,
			Token: resp.LoginResult.Token,
		}
		if err := s.session.Save(sess); err != nil {
			out <- domain.Failure[domain.Session](errorMessage(err))
			return
		}
		sess.IsLoggedIn = true

		s.logger.Info("logged in", "name", sess.Name)
		out <- domain.Success(sess)
	}()
	return out
}

// Logout clears the stored session.
func (s *UserService) Logout(ctx context.Context) error {
	return s.session.Clear()
}
