package topic

import "context"

type Repository interface {
	List(context context.Context) ([]Topic, error)
	Exists(context context.Context, slug string) (bool, error)
}
