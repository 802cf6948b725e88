package feed_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storyfeed/internal/api"
	"storyfeed/internal/feed"
	"storyfeed/internal/feed/mocks"
)

type PagerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	loader *mocks.MockLoader
	store  *mocks.MockStoryStore

	pager *feed.Pager
}

func (s *PagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.loader = mocks.NewMockLoader(s.ctrl)
	s.store = mocks.NewMockStoryStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.pager = feed.NewPager(s.loader, s.store, 5, logger)
}

func (s *PagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPagerTestSuite(t *testing.T) {
	suite.Run(t, new(PagerTestSuite))
}

func (s *PagerTestSuite) TestAppend_RunsInitialRefreshFirst() {
	ctx := context.Background()
	page1 := api.MapStories(storyItems(5, 0))
	page2 := api.MapStories(storyItems(5, 5))

	gomock.InOrder(
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).Return(feed.LoadResult{Stories: page1}, nil),
		s.loader.EXPECT().Load(ctx, feed.LoadAppend, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ feed.LoadType, state feed.PagingState) (feed.LoadResult, error) {
				s.Require().NotNil(state.LastItem())
				s.Equal("story-4", state.LastItem().ID)
				s.Equal(5, state.PageSize)
				return feed.LoadResult{Stories: page2}, nil
			},
		),
	)

	result, err := s.pager.Append(ctx)

	s.NoError(err)
	s.False(result.EndOfPaginationReached)
	s.Len(result.Stories, 5)
}

func (s *PagerTestSuite) TestAppend_ShortCircuitsAfterEnd() {
	ctx := context.Background()
	page1 := api.MapStories(storyItems(5, 0))

	s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).Return(feed.LoadResult{Stories: page1}, nil)
	s.loader.EXPECT().Load(ctx, feed.LoadAppend, gomock.Any()).Return(feed.LoadResult{EndOfPaginationReached: true}, nil)

	_, err := s.pager.Refresh(ctx)
	s.Require().NoError(err)

	result, err := s.pager.Append(ctx)
	s.Require().NoError(err)
	s.True(result.EndOfPaginationReached)

	// No further loader calls expected: the pager answers by itself.
	result, err = s.pager.Append(ctx)
	s.NoError(err)
	s.True(result.EndOfPaginationReached)
	s.True(s.pager.EndReached())
}

func (s *PagerTestSuite) TestRefresh_ResetsWindow() {
	ctx := context.Background()
	page1 := api.MapStories(storyItems(5, 0))
	page2 := api.MapStories(storyItems(5, 5))
	fresh := api.MapStories(storyItems(5, 10))

	gomock.InOrder(
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).Return(feed.LoadResult{Stories: page1}, nil),
		s.loader.EXPECT().Load(ctx, feed.LoadAppend, gomock.Any()).Return(feed.LoadResult{Stories: page2}, nil),
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ feed.LoadType, state feed.PagingState) (feed.LoadResult, error) {
				s.Len(state.Pages, 2, "refresh sees the full window it replaces")
				return feed.LoadResult{Stories: fresh}, nil
			},
		),
		s.loader.EXPECT().Load(ctx, feed.LoadAppend, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ feed.LoadType, state feed.PagingState) (feed.LoadResult, error) {
				s.Len(state.Pages, 1, "window restarts from the refreshed page")
				s.Equal("story-14", state.LastItem().ID)
				return feed.LoadResult{EndOfPaginationReached: true}, nil
			},
		),
	)

	_, err := s.pager.Refresh(ctx)
	s.Require().NoError(err)
	_, err = s.pager.Append(ctx)
	s.Require().NoError(err)
	_, err = s.pager.Refresh(ctx)
	s.Require().NoError(err)
	_, err = s.pager.Append(ctx)
	s.Require().NoError(err)
}

func (s *PagerTestSuite) TestRefresh_PassesAnchor() {
	ctx := context.Background()
	page1 := api.MapStories(storyItems(5, 0))

	gomock.InOrder(
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).Return(feed.LoadResult{Stories: page1}, nil),
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ feed.LoadType, state feed.PagingState) (feed.LoadResult, error) {
				s.Equal(3, state.AnchorIndex)
				return feed.LoadResult{Stories: page1}, nil
			},
		),
	)

	_, err := s.pager.Refresh(ctx)
	s.Require().NoError(err)

	s.pager.SetAnchor(3)
	_, err = s.pager.Refresh(ctx)
	s.NoError(err)
}

func (s *PagerTestSuite) TestPrepend_AddsPageInFront() {
	ctx := context.Background()
	page2 := api.MapStories(storyItems(5, 5))
	page1 := api.MapStories(storyItems(5, 0))

	gomock.InOrder(
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).Return(feed.LoadResult{Stories: page2}, nil),
		s.loader.EXPECT().Load(ctx, feed.LoadPrepend, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ feed.LoadType, state feed.PagingState) (feed.LoadResult, error) {
				s.Equal("story-5", state.FirstItem().ID)
				return feed.LoadResult{Stories: page1}, nil
			},
		),
		s.loader.EXPECT().Load(ctx, feed.LoadPrepend, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ feed.LoadType, state feed.PagingState) (feed.LoadResult, error) {
				s.Equal("story-0", state.FirstItem().ID)
				return feed.LoadResult{EndOfPaginationReached: true}, nil
			},
		),
	)

	_, err := s.pager.Refresh(ctx)
	s.Require().NoError(err)
	_, err = s.pager.Prepend(ctx)
	s.Require().NoError(err)

	result, err := s.pager.Prepend(ctx)
	s.NoError(err)
	s.True(result.EndOfPaginationReached)
}

func (s *PagerTestSuite) TestStories_ReadsCache() {
	ctx := context.Background()
	cached := api.MapStories(storyItems(3, 0))

	s.store.EXPECT().List(ctx).Return(cached, nil)

	stories, err := s.pager.Stories(ctx)

	s.NoError(err)
	s.Equal(cached, stories)
}

func (s *PagerTestSuite) TestRefresh_ErrorLeavesWindowUntouched() {
	ctx := context.Background()
	page1 := api.MapStories(storyItems(5, 0))
	loadErr := errors.New("boom")

	gomock.InOrder(
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).Return(feed.LoadResult{Stories: page1}, nil),
		s.loader.EXPECT().Load(ctx, feed.LoadRefresh, gomock.Any()).Return(feed.LoadResult{}, loadErr),
		s.loader.EXPECT().Load(ctx, feed.LoadAppend, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ feed.LoadType, state feed.PagingState) (feed.LoadResult, error) {
				s.Equal("story-4", state.LastItem().ID, "failed refresh must not clobber the window")
				return feed.LoadResult{EndOfPaginationReached: true}, nil
			},
		),
	)

	_, err := s.pager.Refresh(ctx)
	s.Require().NoError(err)

	_, err = s.pager.Refresh(ctx)
	s.ErrorIs(err, loadErr)

	_, err = s.pager.Append(ctx)
	s.NoError(err)
}

var _ feed.Loader = (*feed.Mediator)(nil)
