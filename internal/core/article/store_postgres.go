// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kiji/internal/platform/database/schema"
	"github.com/taibuivan/kiji/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List returns articles joined with their live comment counts.

Description: The comment count is a grouping aggregate over the comments
table, LEFT JOINed so articles with no comments report 0 rather than being
dropped. The topic restriction is applied before the sort.

Parameters:
  - context: context.Context
  - topicFilter: string (empty means no restriction)
  - sortExpr, direction: resolver-validated SQL identifiers, never raw
    client input

Returns:
  - []*Article: Ordered listing rows (body intentionally not selected)
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, topicFilter, sortExpr, direction string) ([]*Article, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			COUNT(c.%s)::int AS comment_count
		FROM %s a
		LEFT JOIN %s c ON c.%s = a.%s
	`,
		schema.Article.ID,
		schema.Article.Title,
		schema.Article.Topic,
		schema.Article.Author,
		schema.Article.CreatedAt,
		schema.Article.Votes,
		schema.Article.ImgURL,
		schema.Comment.ID,
		schema.Article.Table,
		schema.Comment.Table,
		schema.Comment.ArticleID, schema.Article.ID,
	))

	// Topic restriction (applied before grouping and sorting)
	if topicFilter != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE a.%s = $1", schema.Article.Topic))
		args = append(args, topicFilter)
	}

	queryBuilder.WriteString(fmt.Sprintf(" GROUP BY a.%s", schema.Article.ID))

	// sortExpr/direction come from the service whitelists, so direct
	// interpolation here cannot carry client input.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortExpr, direction))

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	for rows.Next() {
		a := &Article{}
		var commentCount int
		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.Votes,
			&a.ImgURL,
			&commentCount,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "Article")
		}

		a.CommentCount = &commentCount
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	return articles, nil
}

/*
FindByID retrieves a single article by primary key, body included.

Parameters:
  - context: context.Context
  - id: int (serial primary key)

Returns:
  - *Article: Hydrated article entity
  - error: apperr.NotFound if absent, or execution failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.Article.ID, schema.Article.Title, schema.Article.Topic,
		schema.Article.Author, schema.Article.Body, schema.Article.CreatedAt,
		schema.Article.Votes, schema.Article.ImgURL,
		schema.Article.Table, schema.Article.ID,
	)

	a := &Article{}
	var body string
	err := repository.pool.QueryRow(context, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&body,
		&a.CreatedAt,
		&a.Votes,
		&a.ImgURL,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	a.Body = &body
	return a, nil
}

/*
IncrementVotes applies a relative adjustment to an article's vote counter.

Description: The arithmetic happens inside the database engine in a single
UPDATE, so concurrent adjustments cannot lose increments. RETURNING hands
back the updated row without a second round trip.

Parameters:
  - context: context.Context
  - id: int
  - delta: int (signed; negative values decrement)

Returns:
  - *Article: The updated article, body included
  - error: apperr.NotFound if the article does not exist
*/
func (repository *PostgresRepository) IncrementVotes(context context.Context, id int, delta int) (*Article, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + $1
		WHERE %s = $2
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s`,
		schema.Article.Table,
		schema.Article.Votes, schema.Article.Votes,
		schema.Article.ID,
		schema.Article.ID, schema.Article.Title, schema.Article.Topic,
		schema.Article.Author, schema.Article.Body, schema.Article.CreatedAt,
		schema.Article.Votes, schema.Article.ImgURL,
	)

	a := &Article{}
	var body string
	err := repository.pool.QueryRow(context, query, delta, id).Scan(
		&a.ID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&body,
		&a.CreatedAt,
		&a.Votes,
		&a.ImgURL,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	a.Body = &body
	return a, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Article.Table, schema.Article.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Article")
	}

	return exists, nil
}
