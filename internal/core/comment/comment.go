package comment

import "time"

// Comment is a user-authored reply attached to one article.
type Comment struct {
	ID        int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment carries the client-supplied fields of a comment submission.
// Everything else (id, votes, timestamp) is assigned by storage.
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}
