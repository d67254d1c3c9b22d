// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package article implements the article domain: the listing query resolver,
single-article lookup, and vote adjustment.

# Query Resolution

The listing endpoint accepts three untyped query parameters (sort_as, order,
topic). The service resolves them into a closed, typed configuration before
any database round trip:

  - sort_as and order are matched case-insensitively against fixed
    whitelists; anything outside the set is a 400, never a silent fallback.
  - An absent sort_as defaults to created_at, an absent order to desc.
  - A topic filter must name an existing topic slug or the request is a 404.

Only fully resolved values ever reach the SQL builder, so the dynamic ORDER
BY is assembled exclusively from server-owned identifiers.
*/
package article

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/kiji/internal/platform/apperr"
	"github.com/taibuivan/kiji/internal/platform/database/schema"
)

// sortColumns whitelists every legal sort_as value and maps it to the SQL
// expression the listing query sorts by. comment_count is the aggregate
// alias; everything else is a physical article column.
var sortColumns = map[string]string{
	schema.Article.ID:        "a." + schema.Article.ID,
	schema.Article.Title:     "a." + schema.Article.Title,
	schema.Article.Topic:     "a." + schema.Article.Topic,
	schema.Article.Author:    "a." + schema.Article.Author,
	schema.Article.CreatedAt: "a." + schema.Article.CreatedAt,
	schema.Article.Votes:     "a." + schema.Article.Votes,
	"comment_count":          "comment_count",
}

// orderDirections whitelists the legal order values.
var orderDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// Resolver defaults.
const (
	defaultSortBy = "created_at"
	defaultOrder  = "desc"
)

type Service struct {
	repo   Repository
	topics TopicChecker
	logger *slog.Logger
}

func NewService(repo Repository, topics TopicChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		topics: topics,
		logger: logger,
	}
}

// ListArticles validates the raw listing parameters, resolves defaults, and
// returns all matching articles with their comment counts.
//
// Ties under the resolved sort key are left in storage order; the contract
// defines a single sort key and nothing more.
func (service *Service) ListArticles(context context.Context, params ListParams) ([]*Article, error) {
	sortExpr, direction, err := resolveSort(params.SortBy, params.Order)
	if err != nil {
		return nil, err
	}

	// The topic filter is the only parameter that needs I/O to validate,
	// so it is checked last — after the free enum checks have passed.
	if params.Topic != "" {
		known, err := service.topics.Exists(context, params.Topic)
		if err != nil {
			return nil, err
		}
		if !known {
			return nil, apperr.NotFound("Topic")
		}
	}

	return service.repo.List(context, params.Topic, sortExpr, direction)
}

// GetArticle returns a single article including its body.
func (service *Service) GetArticle(context context.Context, id int) (*Article, error) {
	return service.repo.FindByID(context, id)
}

// AdjustVotes applies a signed relative increment to an article's vote total
// and returns the updated record. Votes are never set absolutely.
func (service *Service) AdjustVotes(context context.Context, id int, delta int) (*Article, error) {
	return service.repo.IncrementVotes(context, id, delta)
}

// Exists reports whether an article id is present. The comment domain uses
// it before reading a comment thread.
func (service *Service) Exists(context context.Context, id int) (bool, error) {
	return service.repo.Exists(context, id)
}

// resolveSort normalizes and validates sort_as/order against the whitelists.
//
// Matching is case-insensitive: values are lower-cased before lookup, so
// "ASC" and "Created_At" are accepted. Unknown values are rejected rather
// than coerced to defaults.
func resolveSort(sortBy, order string) (sortExpr, direction string, err error) {
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if order == "" {
		order = defaultOrder
	}

	sortExpr, ok := sortColumns[strings.ToLower(sortBy)]
	if !ok {
		return "", "", apperr.BadRequest()
	}

	direction, ok = orderDirections[strings.ToLower(order)]
	if !ok {
		return "", "", apperr.BadRequest()
	}

	return sortExpr, direction, nil
}
