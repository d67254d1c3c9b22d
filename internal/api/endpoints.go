// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/kiji/internal/platform/respond"
)

// EndpointDescriptor documents one API operation for the directory response.
type EndpointDescriptor struct {
	Description string         `json:"description"`
	Queries     []string       `json:"queries,omitempty"`
	Body        map[string]any `json:"exampleRequestBody,omitempty"`
	Response    map[string]any `json:"exampleResponse,omitempty"`
}

// endpointDirectory is the static self-description served by GET /api.
// Keys are "<METHOD> <path>" as clients would call them.
var endpointDirectory = map[string]EndpointDescriptor{
	"GET /api": {
		Description: "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
		Response: map[string]any{
			"topics": []any{map[string]any{"slug": "cooking", "description": "Hey good looking, what you got cooking?"}},
		},
	},
	"GET /api/articles": {
		Description: "serves an array of all articles",
		Queries:     []string{"topic", "sort_as", "order"},
		Response: map[string]any{
			"articles": []any{map[string]any{
				"article_id":    1,
				"title":         "Seafood substitutions are increasing",
				"topic":         "cooking",
				"author":        "weegembump",
				"created_at":    "2020-07-09T20:11:00Z",
				"votes":         0,
				"comment_count": 6,
			}},
		},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article by its id",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adjusts an article's vote count and serves the updated article",
		Body:        map[string]any{"inc_votes": 1},
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves an array of comments for the given article, most recent first",
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to the given article and serves the new comment",
		Body:        map[string]any{"username": "butter_bridge", "body": "Interesting read"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes the given comment",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
}

// NewDirectoryHandler returns the GET /api handler that describes every
// available endpoint.
func NewDirectoryHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]map[string]EndpointDescriptor{
			"endpoints": endpointDirectory,
		})
	}
}
