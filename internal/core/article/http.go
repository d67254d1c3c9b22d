// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kiji/internal/platform/constants"
	requestutil "github.com/taibuivan/kiji/internal/platform/request"
	"github.com/taibuivan/kiji/internal/platform/respond"
	"github.com/taibuivan/kiji/internal/platform/validate"
)

// Handler implements the HTTP layer for article listing and mutation.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the article endpoints to the shared /articles
// router. The comment domain mounts its nested routes on the same router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Get("/{article_id}", handler.getArticle)
	router.Patch("/{article_id}", handler.adjustVotes)
}

/*
GET /api/articles.

Description: Retrieves all articles with their derived comment counts.
Listing rows never include the article body.

Request:
  - sort_as: string (article_id, title, topic, author, created_at, votes,
    comment_count; default created_at)
  - order: string (asc, desc; default desc)
  - topic: string (existing topic slug)

Response:
  - 200: {"articles": [...]}
  - 400: Unrecognized sort_as or order value
  - 404: Unknown topic slug
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	params := ListParams{
		SortBy: queryParams.Get("sort_as"),
		Order:  queryParams.Get("order"),
		Topic:  queryParams.Get("topic"),
	}

	articles, err := handler.service.ListArticles(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string][]*Article{constants.FieldArticles: articles})
}

/*
GET /api/articles/{article_id}.

Description: Retrieves one article by its numeric id, body included.

Response:
  - 200: {"article": {...}}
  - 400: Non-numeric id
  - 404: No article with that id
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]*Article{constants.FieldArticle: article})
}

// adjustVotesRequest defines the inbound JSON schema for vote adjustment.
// IncVotes is a pointer so a missing field is distinguishable from zero.
type adjustVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

/*
PATCH /api/articles/{article_id}.

Description: Applies a signed relative adjustment to the article's votes.

Request (Body):
  - inc_votes: int (required, may be negative)

Response:
  - 200: {"article": {...}} with the updated vote total
  - 400: Non-numeric id, undecodable body, or missing/non-integer inc_votes
  - 404: No article with that id
*/
func (handler *Handler) adjustVotes(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input adjustVotesRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Custom("inc_votes", input.IncVotes == nil, "This field is required")
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.AdjustVotes(request.Context(), articleID, *input.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]*Article{constants.FieldArticle: article})
}
