package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/domain"
)

const apiKeyBytes = 24

type generateKeyRequest struct {
	UserID string `json:"userId" validate:"required"`
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
}

type generateKeyResponse struct {
	UserID string `json:"userId"`
	APIKey string `json:"apiKey"`
}

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status     string         `json:"status"`
	Timestamp  string         `json:"timestamp"`
	Cache      map[string]int `json:"cache"`
	Database   string         `json:"database,omitempty"`
	UsageQueue *int           `json:"usageQueue,omitempty"`
}

func newAPIKey() (string, error) {
	b := make([]byte, apiKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "ak_" + hex.EncodeToString(b), nil
}

func (s *Server) generateKey(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, errorBody{Error: "Internal server error"})

	var req generateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "userId is required and email must be valid")
		return
	}

	key, err := newAPIKey()
	if err != nil {
		s.logger.Error("Can't generate API key", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	err = s.deps.Users.UpsertAPIKey(r.Context(), domain.UserKey{
		UserID: req.UserID,
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		APIKey: key,
	}, s.deps.DefaultRateLimit)
	if err != nil {
		s.logger.Error("Error while storing API key", zap.String("user_id", req.UserID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate API key")
		return
	}

	s.logger.Info("API key issued", zap.String("user_id", req.UserID))
	writeJSON(w, http.StatusOK, generateKeyResponse{UserID: req.UserID, APIKey: key})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, errorBody{Error: "Internal server error"})

	users, err := s.deps.Users.ListUsers(r.Context())
	if err != nil {
		s.logger.Error("Error while listing users", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, map[string][]domain.User{"users": users})
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, errorBody{Error: "Internal server error"})

	id := pathParam(r, "id")
	var upd domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if upd.Empty() {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}
	if err := s.validate.Struct(upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid update: "+err.Error())
		return
	}

	u, err := s.deps.Users.UpdateUser(r.Context(), id, upd)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		s.logger.Error("Error while updating user", zap.String("user_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, errorBody{Error: "Internal server error"})

	id := pathParam(r, "id")
	err := s.deps.Users.DeleteUser(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		s.logger.Error("Error while deleting user", zap.String("user_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, errorBody{Error: "Internal server error"})

	status, resp := http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Cache: map[string]int{
			"postcodeCache":   size(s.deps.Caches.Postcode),
			"placesCache":     size(s.deps.Caches.Places),
			"suggestionCache": size(s.deps.Caches.Suggestions),
		},
	}
	if s.deps.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		resp.Database = "ok"
		if err := s.deps.DB.Ping(ctx); err != nil {
			s.logger.Warn("Database ping failed", zap.Error(err))
			resp.Status, resp.Database = "unhealthy", "unavailable"
			status = http.StatusServiceUnavailable
		}
	}
	if s.deps.UsageQueue != nil {
		n := s.deps.UsageQueue.Pending()
		resp.UsageQueue = &n
	}
	writeJSON(w, status, resp)
}

func size(c Sizer) int {
	if c == nil {
		return 0
	}
	return c.Len()
}
