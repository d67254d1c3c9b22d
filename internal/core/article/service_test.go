// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiji/internal/core/article"
	"github.com/taibuivan/kiji/internal/platform/apperr"
)

// stubRepository records the resolved sort values the service hands to the
// storage layer, which is what the resolver tests assert on.
type stubRepository struct {
	gotTopic     string
	gotSortExpr  string
	gotDirection string

	articles []*article.Article
	byID     map[int]*article.Article
}

func (s *stubRepository) List(_ context.Context, topicFilter, sortExpr, direction string) ([]*article.Article, error) {
	s.gotTopic = topicFilter
	s.gotSortExpr = sortExpr
	s.gotDirection = direction
	return s.articles, nil
}

func (s *stubRepository) FindByID(_ context.Context, id int) (*article.Article, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	return a, nil
}

func (s *stubRepository) IncrementVotes(_ context.Context, id int, delta int) (*article.Article, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	a.Votes += delta
	return a, nil
}

func (s *stubRepository) Exists(_ context.Context, id int) (bool, error) {
	_, ok := s.byID[id]
	return ok, nil
}

// stubTopics answers Exists from a fixed slug set.
type stubTopics struct {
	known map[string]bool
}

func (s *stubTopics) Exists(_ context.Context, slug string) (bool, error) {
	return s.known[slug], nil
}

func newService(repo *stubRepository, topics *stubTopics) *article.Service {
	return article.NewService(repo, topics, slog.Default())
}

/*
TestListArticlesSortResolution verifies the query resolver: defaults,
case-insensitive acceptance, and strict rejection of unknown values.
*/
func TestListArticlesSortResolution(t *testing.T) {
	testCases := []struct {
		name          string
		params        article.ListParams
		wantSortExpr  string
		wantDirection string
		wantErr       bool
	}{
		{
			name:          "defaults to created_at descending",
			params:        article.ListParams{},
			wantSortExpr:  "a.created_at",
			wantDirection: "DESC",
		},
		{
			name:          "explicit column and order",
			params:        article.ListParams{SortBy: "votes", Order: "asc"},
			wantSortExpr:  "a.votes",
			wantDirection: "ASC",
		},
		{
			name:          "derived comment_count column",
			params:        article.ListParams{SortBy: "comment_count"},
			wantSortExpr:  "comment_count",
			wantDirection: "DESC",
		},
		{
			name:          "mixed case values are normalized",
			params:        article.ListParams{SortBy: "Title", Order: "ASC"},
			wantSortExpr:  "a.title",
			wantDirection: "ASC",
		},
		{
			name:    "unknown sort column is rejected",
			params:  article.ListParams{SortBy: "body"},
			wantErr: true,
		},
		{
			name:    "unknown order is rejected",
			params:  article.ListParams{Order: "sideways"},
			wantErr: true,
		},
		{
			name:    "sql injection attempt is rejected",
			params:  article.ListParams{SortBy: "votes; DROP TABLE articles"},
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			repo := &stubRepository{}
			service := newService(repo, &stubTopics{})

			_, err := service.ListArticles(context.Background(), testCase.params)

			if testCase.wantErr {
				require.Error(t, err)
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, 400, appErr.HTTPStatus)
				assert.Equal(t, "Bad Request", appErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.wantSortExpr, repo.gotSortExpr)
			assert.Equal(t, testCase.wantDirection, repo.gotDirection)
		})
	}
}

/*
TestListArticlesTopicFilter verifies that a topic filter is checked for
existence before the listing query runs, and passed through when known.
*/
func TestListArticlesTopicFilter(t *testing.T) {
	topics := &stubTopics{known: map[string]bool{"cooking": true}}

	t.Run("known topic is forwarded to storage", func(t *testing.T) {
		repo := &stubRepository{}
		service := newService(repo, topics)

		_, err := service.ListArticles(context.Background(), article.ListParams{Topic: "cooking"})

		require.NoError(t, err)
		assert.Equal(t, "cooking", repo.gotTopic)
	})

	t.Run("unknown topic is a not found error", func(t *testing.T) {
		repo := &stubRepository{}
		service := newService(repo, topics)

		_, err := service.ListArticles(context.Background(), article.ListParams{Topic: "gardening"})

		require.Error(t, err)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
		assert.Equal(t, "Not Found", appErr.Message)
	})

	t.Run("invalid sort rejected before the topic lookup", func(t *testing.T) {
		repo := &stubRepository{}
		service := newService(repo, topics)

		_, err := service.ListArticles(context.Background(), article.ListParams{
			SortBy: "nope",
			Topic:  "gardening",
		})

		require.Error(t, err)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})
}

/*
TestAdjustVotes verifies the relative vote adjustment round trip, including
negative deltas.
*/
func TestAdjustVotes(t *testing.T) {
	repo := &stubRepository{
		byID: map[int]*article.Article{
			1: {ID: 1, Title: "On Brewing", Votes: 10, CreatedAt: time.Now()},
		},
	}
	service := newService(repo, &stubTopics{})

	updated, err := service.AdjustVotes(context.Background(), 1, -3)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Votes)

	_, err = service.AdjustVotes(context.Background(), 42, 1)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}
