package article

import "time"

// Article is a topic-tagged post authored by a user, votable.
//
// One struct serves both API shapes: the listing carries CommentCount and
// never Body, the single-article fetch carries Body and no CommentCount.
// Body is a pointer so a stored empty string still serializes as "body": ""
// on the detail response while the listing omits the key entirely.
type Article struct {
	ID        int       `json:"article_id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	Author    string    `json:"author"`
	Body      *string   `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
	ImgURL    string    `json:"article_img_url"`

	// CommentCount is derived at query time from the comments table; it is
	// never persisted and never stale.
	CommentCount *int `json:"comment_count,omitempty"`
}

// ListParams holds the raw, untyped query-string values of the listing
// endpoint before the resolver validates them.
type ListParams struct {
	SortBy string // sort_as query parameter
	Order  string // order query parameter
	Topic  string // topic query parameter
}
