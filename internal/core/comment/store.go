package comment

import "context"

type Repository interface {
	// ListByArticle returns an article's comments, most recent first.
	ListByArticle(context context.Context, articleID int) ([]*Comment, error)

	// Insert persists a new comment and returns it fully hydrated.
	Insert(context context.Context, articleID int, input NewComment) (*Comment, error)

	// Delete removes a comment by id.
	Delete(context context.Context, id int) error
}

// ArticleChecker is the slice of the article domain the comment service
// needs: distinguishing an empty thread from a nonexistent article.
type ArticleChecker interface {
	Exists(context context.Context, id int) (bool, error)
}
