package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack/worktrack-backend-go/internal/handler/http/response"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/validator"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)

	ListGroups(w http.ResponseWriter, r *http.Request)
	CreateGroup(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler. Admin only (enforced by routing).
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.userService.CreateUser(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", created)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Update implements UserHandler. Admin only (enforced by routing).
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.userService.UpdateUser(r.Context(), updateReq); err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", nil)
}

// ListGroups implements UserHandler.
func (h *UserHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.userService.ListGroups(r.Context())
	if err != nil {
		slog.Error("List groups service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

// CreateGroup implements UserHandler. Admin only (enforced by routing).
func (h *UserHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var createReq struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create group decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if validator.IsEmpty(createReq.Name) {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "name", Message: "Name is required"},
		})
		return
	}

	created, err := h.userService.CreateGroup(r.Context(), createReq.Name)
	if err != nil {
		slog.Error("Create group service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Group created successfully", created)
}
