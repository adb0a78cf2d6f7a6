package handlers

import (
	"net/http"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService domain.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService domain.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

type createUserRequest struct {
	Name string `json:"name"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "failed to decode create user request", err)
		return
	}

	user, err := h.userService.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, h.logger, "failed to create user", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "failed to get user", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}
