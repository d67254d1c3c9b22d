// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiji/internal/api"
	"github.com/taibuivan/kiji/internal/core/article"
	"github.com/taibuivan/kiji/internal/core/comment"
	"github.com/taibuivan/kiji/internal/core/topic"
	"github.com/taibuivan/kiji/internal/platform/apperr"
	"github.com/taibuivan/kiji/internal/platform/config"
	"github.com/taibuivan/kiji/internal/users/account"
)

// In-memory repositories backing the routing tests. Behavior under test is
// the composed router: paths, methods, envelopes, and status codes.

type topicRepo struct{ topics []topic.Topic }

func (r *topicRepo) List(_ context.Context) ([]topic.Topic, error) { return r.topics, nil }
func (r *topicRepo) Exists(_ context.Context, slug string) (bool, error) {
	for _, t := range r.topics {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

type articleRepo struct{ articles map[int]*article.Article }

// List mirrors the listing query's shape: comment_count present, body never
// selected.
func (r *articleRepo) List(_ context.Context, _, _, _ string) ([]*article.Article, error) {
	out := make([]*article.Article, 0, len(r.articles))
	for _, a := range r.articles {
		row := *a
		row.Body = nil
		row.CommentCount = intPtr(0)
		out = append(out, &row)
	}
	return out, nil
}

func (r *articleRepo) FindByID(_ context.Context, id int) (*article.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	return a, nil
}

func (r *articleRepo) IncrementVotes(_ context.Context, id int, delta int) (*article.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	a.Votes += delta
	return a, nil
}

func (r *articleRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.articles[id]
	return ok, nil
}

type commentRepo struct{ threads map[int][]*comment.Comment }

func (r *commentRepo) ListByArticle(_ context.Context, articleID int) ([]*comment.Comment, error) {
	thread := r.threads[articleID]
	if thread == nil {
		thread = []*comment.Comment{}
	}
	return thread, nil
}

func (r *commentRepo) Insert(_ context.Context, articleID int, input comment.NewComment) (*comment.Comment, error) {
	return &comment.Comment{ID: 77, ArticleID: articleID, Author: input.Username, Body: input.Body}, nil
}

func (r *commentRepo) Delete(_ context.Context, id int) error {
	for articleID, thread := range r.threads {
		for i, c := range thread {
			if c.ID == id {
				r.threads[articleID] = append(thread[:i], thread[i+1:]...)
				return nil
			}
		}
	}
	return apperr.NotFound("Comment")
}

type accountRepo struct{ users []*account.User }

func (r *accountRepo) List(_ context.Context) ([]*account.User, error) { return r.users, nil }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.Default()

	topics := topic.NewService(&topicRepo{topics: []topic.Topic{
		{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
	}}, logger)

	articles := article.NewService(&articleRepo{articles: map[int]*article.Article{
		1: {ID: 1, Title: "On Brewing", Topic: "cooking", Author: "butter_bridge", Body: strPtr("Steep it longer."), Votes: 10},
		2: {ID: 2, Title: "Untitled draft", Topic: "cooking", Author: "butter_bridge", Body: strPtr("")},
	}}, topics, logger)

	comments := comment.NewService(&commentRepo{threads: map[int][]*comment.Comment{
		1: {{ID: 5, ArticleID: 1, Author: "lurker", Body: "nice"}},
	}}, articles, logger)

	users := account.NewService(&accountRepo{users: []*account.User{
		{Username: "butter_bridge", Name: "jonny"},
	}}, logger)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error { return nil },
	}, logger)

	server := api.NewServer(context.Background(), &config.Config{ServerPort: "0"}, logger, nil, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Directory: api.NewDirectoryHandler(),
		Topic:     topic.NewHandler(topics),
		Article:   article.NewHandler(articles),
		Comment:   comment.NewHandler(comments),
		Account:   account.NewHandler(users),
	})

	return server.Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestRouting verifies the composed route table: every documented endpoint is
reachable and unknown paths fall through to the standard error envelope.
*/
func TestRouting(t *testing.T) {
	handler := newTestServer(t)

	testCases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "health probe", method: http.MethodGet, path: "/health", wantStatus: 200},
		{name: "readiness probe", method: http.MethodGet, path: "/ready", wantStatus: 200},
		{name: "api directory", method: http.MethodGet, path: "/api", wantStatus: 200},
		{name: "topics listing", method: http.MethodGet, path: "/api/topics", wantStatus: 200},
		{name: "articles listing", method: http.MethodGet, path: "/api/articles", wantStatus: 200},
		{name: "articles listing with known topic", method: http.MethodGet, path: "/api/articles?topic=cooking", wantStatus: 200},
		{name: "articles listing unknown topic", method: http.MethodGet, path: "/api/articles?topic=gardening", wantStatus: 404},
		{name: "articles listing unknown sort column", method: http.MethodGet, path: "/api/articles?sort_as=coolness", wantStatus: 400},
		{name: "articles listing unknown order", method: http.MethodGet, path: "/api/articles?order=sideways", wantStatus: 400},
		{name: "article detail", method: http.MethodGet, path: "/api/articles/1", wantStatus: 200},
		{name: "article detail malformed id", method: http.MethodGet, path: "/api/articles/abc", wantStatus: 400},
		{name: "article detail missing", method: http.MethodGet, path: "/api/articles/99", wantStatus: 404},
		{name: "vote adjustment", method: http.MethodPatch, path: "/api/articles/1", body: `{"inc_votes": 3}`, wantStatus: 200},
		{name: "vote adjustment missing field", method: http.MethodPatch, path: "/api/articles/1", body: `{}`, wantStatus: 400},
		{name: "article comments", method: http.MethodGet, path: "/api/articles/1/comments", wantStatus: 200},
		{name: "comment submission", method: http.MethodPost, path: "/api/articles/1/comments", body: `{"username": "lurker", "body": "agreed"}`, wantStatus: 201},
		{name: "comment deletion", method: http.MethodDelete, path: "/api/comments/5", wantStatus: 204},
		{name: "users listing", method: http.MethodGet, path: "/api/users", wantStatus: 200},
		{name: "unknown route", method: http.MethodGet, path: "/api/nonsense", wantStatus: 404},
		{name: "unknown method", method: http.MethodPut, path: "/api/topics", wantStatus: 404},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := doRequest(t, handler, testCase.method, testCase.path, testCase.body)
			assert.Equal(t, testCase.wantStatus, recorder.Code)
		})
	}
}

/*
TestErrorEnvelope verifies that router-level failures use the same
{"msg": string} envelope as handler-level ones.
*/
func TestErrorEnvelope(t *testing.T) {
	handler := newTestServer(t)

	recorder := doRequest(t, handler, http.MethodGet, "/api/nonsense", "")

	require.Equal(t, 404, recorder.Code)

	var envelope struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "Not Found", envelope.Msg)
}

/*
TestArticleBodyShaping verifies the two response shapes of an article: the
detail fetch always carries the body key, including for a stored empty
string, while listing rows never do.
*/
func TestArticleBodyShaping(t *testing.T) {
	handler := newTestServer(t)

	t.Run("detail includes empty body", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/api/articles/2", "")

		require.Equal(t, 200, recorder.Code)

		var payload struct {
			Article map[string]json.RawMessage `json:"article"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

		body, present := payload.Article["body"]
		require.True(t, present)
		assert.Equal(t, `""`, string(body))
	})

	t.Run("listing rows omit body", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/api/articles", "")

		require.Equal(t, 200, recorder.Code)

		var payload struct {
			Articles []map[string]json.RawMessage `json:"articles"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		require.NotEmpty(t, payload.Articles)

		for _, row := range payload.Articles {
			assert.NotContains(t, row, "body")
			assert.Contains(t, row, "comment_count")
		}
	})
}

/*
TestCommentSubmissionExtraFields verifies that fields outside the comment
contract (username, body) are ignored rather than stored or rejected.
*/
func TestCommentSubmissionExtraFields(t *testing.T) {
	handler := newTestServer(t)

	recorder := doRequest(t, handler, http.MethodPost, "/api/articles/1/comments",
		`{"username": "lurker", "body": "agreed", "votes": 999, "comment_id": 1}`)

	require.Equal(t, 201, recorder.Code)

	var payload struct {
		Comment comment.Comment `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Equal(t, "lurker", payload.Comment.Author)
	assert.Equal(t, "agreed", payload.Comment.Body)
	assert.Equal(t, 1, payload.Comment.ArticleID)
	assert.Zero(t, payload.Comment.Votes)
	assert.NotEqual(t, 1, payload.Comment.ID)
}

/*
TestDirectoryResponse verifies that GET /api self-describes the endpoint set.
*/
func TestDirectoryResponse(t *testing.T) {
	handler := newTestServer(t)

	recorder := doRequest(t, handler, http.MethodGet, "/api", "")

	require.Equal(t, 200, recorder.Code)

	var payload struct {
		Endpoints map[string]struct {
			Description string `json:"description"`
		} `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Contains(t, payload.Endpoints, "GET /api/articles")
	assert.Contains(t, payload.Endpoints, "DELETE /api/comments/:comment_id")
	assert.NotEmpty(t, payload.Endpoints["GET /api/articles"].Description)
}
