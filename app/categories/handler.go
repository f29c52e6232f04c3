package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storelab/catalog-api/app/api"
	"github.com/storelab/catalog-api/models"
	"github.com/storelab/catalog-api/service"
)

type CategoryProvider interface {
	Create(ctx context.Context, in service.CategoryInput) (*service.CategoryView, error)
	List(ctx context.Context) ([]service.CategoryView, error)
}

type CategoryHandler struct {
	svc CategoryProvider
}

func NewCategoryHandler(svc CategoryProvider) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := h.svc.Create(r.Context(), input)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			api.Error(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, models.ErrCategoryNameTaken):
			api.Error(w, http.StatusBadRequest, err.Error())
		default:
			api.Error(w, http.StatusInternalServerError, "failed to create category")
		}
		return
	}

	api.JSON(w, http.StatusCreated, view)
}

func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	api.JSON(w, http.StatusOK, views)
}
