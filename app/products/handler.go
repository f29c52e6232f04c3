package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/storelab/catalog-api/app/api"
	"github.com/storelab/catalog-api/models"
	"github.com/storelab/catalog-api/service"
)

type ProductProvider interface {
	Create(ctx context.Context, in service.ProductInput) (*service.ProductView, error)
	Get(ctx context.Context, id uint) (*service.ProductView, error)
	List(ctx context.Context) ([]service.ProductView, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]service.ProductView, error)
	Update(ctx context.Context, id uint, in service.ProductInput) (*service.ProductView, error)
	Delete(ctx context.Context, id uint) error
}

type ProductHandler struct {
	svc ProductProvider
}

func NewProductHandler(svc ProductProvider) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeProductError(w, err, "failed to create product")
		return
	}
	api.JSON(w, http.StatusCreated, view)
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeProductError(w, err, "failed to fetch product")
		return
	}
	api.JSON(w, http.StatusOK, view)
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}
	api.JSON(w, http.StatusOK, views)
}

// HandleListByCategory serves GET /categories/{id}/products. It lives here
// rather than in the categories handler because the payload is products.
func (h *ProductHandler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	views, err := h.svc.ListByCategory(r.Context(), id)
	if err != nil {
		writeProductError(w, err, "failed to fetch products")
		return
	}
	api.JSON(w, http.StatusOK, views)
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		writeProductError(w, err, "failed to update product")
		return
	}
	api.JSON(w, http.StatusOK, view)
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeProductError(w, err, "failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeInput(w http.ResponseWriter, r *http.Request) (service.ProductInput, bool) {
	var input service.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid JSON body")
		return input, false
	}
	return input, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func writeProductError(w http.ResponseWriter, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		api.Error(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrCategoryNotFound):
		api.Error(w, http.StatusNotFound, err.Error())
	default:
		api.Error(w, http.StatusInternalServerError, fallback)
	}
}
