// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kiji/internal/platform/apperr"
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
ListByArticle returns the comment thread of one article, newest first.

Parameters:
  - context: context.Context
  - articleID: int (caller verifies the article exists beforehand)

Returns:
  - []*Comment: Possibly empty thread in reverse chronological order
  - error: Database execution errors
*/
func (repository *PostgresRepository) ListByArticle(context context.Context, articleID int) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		schema.Comment.ID, schema.Comment.ArticleID, schema.Comment.Author,
		schema.Comment.Body, schema.Comment.Votes, schema.Comment.CreatedAt,
		schema.Comment.Table,
		schema.Comment.ArticleID,
		schema.Comment.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, articleID)
	if err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		err := rows.Scan(
			&c.ID,
			&c.ArticleID,
			&c.Author,
			&c.Body,
			&c.Votes,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "Comment")
		}

		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}

	return comments, nil
}

/*
Insert persists a comment in a single round trip.

Description: Referential integrity does the validation work: the article
foreign key rejects unknown article ids and the author foreign key rejects
unknown usernames. dberr translates each violation by constraint name, so no
pre-flight existence queries are needed here.

Parameters:
  - context: context.Context
  - articleID: int
  - input: NewComment (service-validated username and body)

Returns:
  - *Comment: The stored comment with id, votes, and timestamp assigned
  - error: apperr.NotFound for a missing article, apperr.UsernameNotFound
    for a missing author
*/
func (repository *PostgresRepository) Insert(context context.Context, articleID int, input NewComment) (*Comment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s, %s, %s, %s`,
		schema.Comment.Table,
		schema.Comment.ArticleID, schema.Comment.Author, schema.Comment.Body,
		schema.Comment.ID, schema.Comment.ArticleID, schema.Comment.Author,
		schema.Comment.Body, schema.Comment.Votes, schema.Comment.CreatedAt,
	)

	c := &Comment{}
	err := repository.pool.QueryRow(context, query, articleID, input.Username, input.Body).Scan(
		&c.ID,
		&c.ArticleID,
		&c.Author,
		&c.Body,
		&c.Votes,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	return c, nil
}

/*
Delete removes a comment by primary key.

Returns:
  - error: apperr.NotFound if no row carried the id
*/
func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Comment.Table, schema.Comment.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Comment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return nil
}
