// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment implements the comment domain: per-article threads,
submission, and deletion.

Comments belong to exactly one article. Reading a thread distinguishes an
article with no comments (200, empty list) from an article that does not
exist (404), so the service checks the parent before querying the thread.
Submission leans on the database's foreign keys instead: a single INSERT
whose constraint violations are translated into the right 404s.
*/
package comment

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kiji/internal/platform/apperr"
	"github.com/taibuivan/kiji/internal/platform/validate"
)

type Service struct {
	repo     Repository
	articles ArticleChecker
	logger   *slog.Logger
}

func NewService(repo Repository, articles ArticleChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		articles: articles,
		logger:   logger,
	}
}

// ListForArticle returns an article's comments, newest first. The parent
// article is verified first so an empty thread and a missing article produce
// different outcomes.
func (service *Service) ListForArticle(context context.Context, articleID int) ([]*Comment, error) {
	known, err := service.articles.Exists(context, articleID)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.NotFound("Article")
	}

	return service.repo.ListByArticle(context, articleID)
}

// Create validates the submission and persists it. Referential checks
// (article id, username) are left to the storage layer's foreign keys.
func (service *Service) Create(context context.Context, articleID int, input NewComment) (*Comment, error) {
	v := &validate.Validator{}
	v.Required("username", input.Username)
	v.Required("body", input.Body)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.Insert(context, articleID, input)
}

// Remove deletes a comment by id.
func (service *Service) Remove(context context.Context, id int) error {
	return service.repo.Delete(context, id)
}
