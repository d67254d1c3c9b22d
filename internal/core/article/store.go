package article

import "context"

type Repository interface {
	// List returns every article (optionally restricted to one topic) with
	// its live comment count, ordered by the given resolver-validated sort
	// expression and direction.
	List(context context.Context, topicFilter, sortExpr, direction string) ([]*Article, error)

	// FindByID returns a single article including its body.
	FindByID(context context.Context, id int) (*Article, error)

	// IncrementVotes applies a relative vote adjustment and returns the
	// updated article.
	IncrementVotes(context context.Context, id int, delta int) (*Article, error)

	// Exists reports whether an article id is present.
	Exists(context context.Context, id int) (bool, error)
}

// TopicChecker is the slice of the topic domain the listing resolver needs:
// just enough to tell a misspelled topic filter from an empty one.
type TopicChecker interface {
	Exists(context context.Context, slug string) (bool, error)
}
