// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kiji/internal/platform/constants"
	requestutil "github.com/taibuivan/kiji/internal/platform/request"
	"github.com/taibuivan/kiji/internal/platform/respond"
)

// Handler implements the HTTP layer for comments.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterArticleRoutes attaches the nested thread endpoints to the
// /articles router, alongside the article handlers.
func (handler *Handler) RegisterArticleRoutes(router chi.Router) {
	router.Get("/{article_id}/comments", handler.listForArticle)
	router.Post("/{article_id}/comments", handler.createComment)
}

// RegisterRoutes attaches the comment-addressed endpoints to the /comments
// router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Delete("/{comment_id}", handler.deleteComment)
}

/*
GET /api/articles/{article_id}/comments.

Description: Retrieves an article's comment thread, most recent first.
An existing article with no comments yields an empty list, not an error.

Response:
  - 200: {"comments": [...]}
  - 400: Non-numeric article id
  - 404: No article with that id
*/
func (handler *Handler) listForArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListForArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string][]*Comment{constants.FieldComments: comments})
}

/*
POST /api/articles/{article_id}/comments.

Description: Submits a comment under an existing username.

Request (Body):
  - username: string (required, existing user)
  - body: string (required)

Response:
  - 201: {"comment": {...}}
  - 400: Non-numeric id, undecodable body, or missing fields
  - 404: No article with that id, or "Username Does Not Exist"
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input NewComment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Create(request.Context(), articleID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]*Comment{constants.FieldComment: comment})
}

/*
DELETE /api/comments/{comment_id}.

Description: Permanently removes a comment.

Response:
  - 204: Empty body
  - 400: Non-numeric id
  - 404: No comment with that id
*/
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
