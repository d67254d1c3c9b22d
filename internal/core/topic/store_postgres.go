package topic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kiji/internal/platform/database/schema"
	"github.com/taibuivan/kiji/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Topic.Slug, schema.Topic.Description,
		schema.Topic.Table, schema.Topic.Slug)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Topic")
	}
	defer rows.Close()

	topics := make([]Topic, 0)
	for rows.Next() {
		t := Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "Topic")
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Topic")
	}

	return topics, nil
}

func (repository *PostgresRepository) Exists(context context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Topic.Table, schema.Topic.Slug)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Topic")
	}

	return exists, nil
}
