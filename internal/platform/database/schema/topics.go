// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema centralizes physical table and column names so queries are
// assembled from constants instead of string literals scattered across
// repositories.
package schema

// TopicTable represents the 'topics' table
type TopicTable struct {
	Table       string
	Slug        string
	Description string
}

// Topic is the schema definition for topics
var Topic = TopicTable{
	Table:       "topics",
	Slug:        "slug",
	Description: "description",
}
