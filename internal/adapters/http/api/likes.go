// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LikesHandler handles the ephemeral like counters. Sessions ride an
// opaque cookie; counters reset when the process restarts.
type LikesHandler struct {
	sessions   SessionProvider
	cookieName string
}

// NewLikesHandler creates a new likes handler.
func NewLikesHandler(sessions SessionProvider, cookieName string) *LikesHandler {
	if cookieName == "" {
		cookieName = "greenwatch_session"
	}
	return &LikesHandler{
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// likeRequest is the POST /likes body.
type likeRequest struct {
	Kind string `json:"kind"`
}

func (l likeRequest) validate() error {
	if strings.TrimSpace(l.Kind) == "" {
		return ErrBadRequest
	}
	return nil
}

// HandleLikes handles GET and POST /likes requests.
func (h *LikesHandler) HandleLikes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *LikesHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := h.ensureSession(w, r)
	writeJSON(w, http.StatusOK, h.sessions.LikeCounts(r.Context(), id))
}

func (h *LikesHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	id := h.ensureSession(w, r)
	counts, err := h.sessions.Like(r.Context(), id, req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// ensureSession returns the request's session ID, minting one and
// setting the cookie when absent.
func (h *LikesHandler) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(h.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := h.sessions.NewSession(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
