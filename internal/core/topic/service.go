package topic

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTopics(context context.Context) ([]Topic, error) {
	return service.repo.List(context)
}

// Exists reports whether a topic slug is present in the reference set.
// The article listing uses it to distinguish "no articles under this topic"
// from "no such topic".
func (service *Service) Exists(context context.Context, slug string) (bool, error) {
	return service.repo.Exists(context, slug)
}
