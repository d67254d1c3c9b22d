// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed resets the database to a known development dataset.
//
// It truncates all content tables, then inserts the fixture topics, users,
// articles, and comments in dependency order. Intended for local development
// and demo environments only — it is destructive by design.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kiji/internal/platform/config"
	"github.com/taibuivan/kiji/internal/platform/constants"
	"github.com/taibuivan/kiji/internal/platform/migration"
	pgstore "github.com/taibuivan/kiji/internal/platform/postgres"
	"github.com/taibuivan/kiji/pkg/slug"
)

// # Fixture Data

type seedTopic struct {
	Name        string // slugified into the primary key
	Description string
}

type seedUser struct {
	Username  string
	Name      string
	AvatarURL string
}

type seedArticle struct {
	Title  string
	Topic  string
	Author string
	Body   string
	ImgURL string
	Votes  int
}

type seedComment struct {
	ArticleTitle string // resolved to an article_id after the article insert
	Author       string
	Body         string
	Votes        int
}

var topics = []seedTopic{
	{Name: "Mitch", Description: "The man, the Mitch, the legend"},
	{Name: "Cats", Description: "Not dogs"},
	{Name: "Paper", Description: "what books are made of"},
}

var users = []seedUser{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

var articles = []seedArticle{
	{
		Title:  "Living in the shadow of a great man",
		Topic:  "mitch",
		Author: "butter_bridge",
		Body:   "I find this existence challenging",
		ImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
		Votes:  100,
	},
	{
		Title:  "Sony Vaio; or, The Laptop",
		Topic:  "mitch",
		Author: "icellusedkars",
		Body:   "Call me Mitchell. Some years ago, never mind how long precisely, I thought I would sail about a little and see the watery part of the world.",
		ImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Title:  "Eight pug gifs that remind me of mitch",
		Topic:  "mitch",
		Author: "icellusedkars",
		Body:   "some gifs",
		ImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Title:  "Student SUES Mitch!",
		Topic:  "mitch",
		Author: "rogersop",
		Body:   "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums, and they are suing for damages",
		ImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Title:  "UNCOVERED: catspiracy to bring down democracy",
		Topic:  "cats",
		Author: "rogersop",
		Body:   "Bastet walks amongst us, and the cats are taking arms!",
		ImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Title:  "Moustache",
		Topic:  "mitch",
		Author: "butter_bridge",
		Body:   "Have you seen the size of that thing?",
		ImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
}

var comments = []seedComment{
	{
		ArticleTitle: "Living in the shadow of a great man",
		Author:       "butter_bridge",
		Body:         "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!",
		Votes:        16,
	},
	{
		ArticleTitle: "Living in the shadow of a great man",
		Author:       "icellusedkars",
		Body:         "The beautiful thing about treasure is that it exists.",
		Votes:        14,
	},
	{
		ArticleTitle: "Living in the shadow of a great man",
		Author:       "icellusedkars",
		Body:         "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.",
		Votes:        100,
	},
	{
		ArticleTitle: "Moustache",
		Author:       "lurker",
		Body:         "Superficially charming",
	},
	{
		ArticleTitle: "UNCOVERED: catspiracy to bring down democracy",
		Author:       "rogersop",
		Body:         "I am 100% sure that we're not completely sure.",
		Votes:        1,
	},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName), slog.String("cmd", "seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	must(log, seed(ctx, pool, log), "seed database")

	log.Info("seed_complete")
}

// seed wipes and repopulates all content tables in one transaction, so a
// failed run leaves the previous dataset intact.
func seed(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed: begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Comments cascade from articles; restart the serial counters so seeded
	// ids are stable across runs.
	if _, err := tx.Exec(ctx, `TRUNCATE topics, users, articles, comments RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("seed: truncate: %w", err)
	}

	// Topics and users have no dependencies; batch them together.
	batch := &pgx.Batch{}
	for _, t := range topics {
		batch.Queue(`INSERT INTO topics (slug, description) VALUES ($1, $2)`, slug.From(t.Name), t.Description)
	}
	for _, u := range users {
		batch.Queue(`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`, u.Username, u.Name, u.AvatarURL)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed: insert topics and users: %w", err)
	}

	// Articles next; remember their assigned ids by title for the comments.
	// Creation timestamps are staggered so the default listing order is
	// deterministic.
	articleIDs := make(map[string]int, len(articles))
	createdAt := time.Now().Add(-time.Duration(len(articles)) * 24 * time.Hour)

	for _, a := range articles {
		var id int
		err := tx.QueryRow(ctx, `
			INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING article_id`,
			a.Title, a.Topic, a.Author, a.Body, createdAt, a.Votes, a.ImgURL,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed: insert article %q: %w", a.Title, err)
		}

		articleIDs[a.Title] = id
		createdAt = createdAt.Add(24 * time.Hour)
	}

	commentBatch := &pgx.Batch{}
	for _, c := range comments {
		articleID, ok := articleIDs[c.ArticleTitle]
		if !ok {
			return fmt.Errorf("seed: comment references unknown article %q", c.ArticleTitle)
		}
		commentBatch.Queue(`
			INSERT INTO comments (article_id, author, body, votes)
			VALUES ($1, $2, $3, $4)`,
			articleID, c.Author, c.Body, c.Votes,
		)
	}
	if err := tx.SendBatch(ctx, commentBatch).Close(); err != nil {
		return fmt.Errorf("seed: insert comments: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}

	log.Info("fixtures_inserted",
		slog.Int("topics", len(topics)),
		slog.Int("users", len(users)),
		slog.Int("articles", len(articles)),
		slog.Int("comments", len(comments)),
	)
	return nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
