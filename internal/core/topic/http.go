package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kiji/internal/platform/constants"
	"github.com/taibuivan/kiji/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTopics)
	return router
}

/*
GET /api/topics.

Description: Retrieves every discussion category.

Response:
  - 200: {"topics": [...]}
*/
func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string][]Topic{constants.FieldTopics: topics})
}
