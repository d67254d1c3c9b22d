// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ArticleTable represents the 'articles' table
type ArticleTable struct {
	Table     string
	ID        string
	Title     string
	Topic     string
	Author    string
	Body      string
	CreatedAt string
	Votes     string
	ImgURL    string
}

// Article is the schema definition for articles
var Article = ArticleTable{
	Table:     "articles",
	ID:        "article_id",
	Title:     "title",
	Topic:     "topic",
	Author:    "author",
	Body:      "body",
	CreatedAt: "created_at",
	Votes:     "votes",
	ImgURL:    "article_img_url",
}
