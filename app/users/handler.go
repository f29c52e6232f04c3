package users

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

// AdminEmailHeader carries the claimed admin identity for guarded routes.
const AdminEmailHeader = "X-Admin-Email"

type UserProvider interface {
	Create(ctx context.Context, in service.UserInput) (*service.UserView, error)
	Get(ctx context.Context, id uint) (*service.UserView, error)
	List(ctx context.Context) ([]service.UserView, error)
	Login(ctx context.Context, in service.LoginInput) (*service.LoginResult, error)
	VerifyAdmin(ctx context.Context, email string) (*service.UserView, error)
}

type UserHandler struct {
	svc UserProvider
}

func NewUserHandler(svc UserProvider) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.UserInput
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
		case errors.Is(err, models.ErrEmailTaken):
			api.Error(w, http.StatusBadRequest, err.Error())
		default:
			api.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	api.JSON(w, http.StatusCreated, view)
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	view, err := h.svc.Get(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			api.Error(w, http.StatusNotFound, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	api.JSON(w, http.StatusOK, view)
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	api.JSON(w, http.StatusOK, views)
}

func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.svc.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			api.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, "login failed")
		return
	}
	api.JSON(w, http.StatusOK, result)
}

// HandleAdminList serves the admin-guarded user listing. A missing identity
// header is a 401; a present identity that is unknown or not an admin is 403.
func (h *UserHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get(AdminEmailHeader)
	if email == "" {
		api.Error(w, http.StatusUnauthorized, "missing "+AdminEmailHeader+" header")
		return
	}

	if _, err := h.svc.VerifyAdmin(r.Context(), email); err != nil {
		if errors.Is(err, models.ErrAdminRequired) {
			api.Error(w, http.StatusForbidden, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to verify admin")
		return
	}

	h.HandleList(w, r)
}
