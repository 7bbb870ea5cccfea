package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/genie/internal/services"
	"github.com/desertthunder/genie/internal/shared"
)

const (
	WelcomeMessage = "Welcome to the Spotify Genie API! Save a token at /api/save-token, then visit /api/user-songs for your saved tracks"

	msgTokenSaved      = "Access token received and saved successfully"
	msgTokenMissing    = "Access token is missing"
	msgInvalidBody     = "Invalid request body"
	msgNoToken         = "No access token available"
	msgFetchFailed     = "Failed to fetch songs from Spotify"
	msgRequestErrored  = "An error occurred while fetching songs"
	msgInternal        = "Internal server error"
	maxTokenBodyLength = 1 << 20
)

// TrackSource fetches saved tracks from the upstream API on behalf of a token holder.
type TrackSource interface {
	SavedTracks(ctx context.Context, token string, query url.Values) (*services.RawResponse, error)
}

// RelayHandler serves the token relay endpoints.
//
// It owns the [TokenSlot] written by save-token and read by user-songs.
type RelayHandler struct {
	tokens *TokenSlot
	tracks TrackSource
	logger *log.Logger
}

// NewRelayHandler creates a [RelayHandler]. A nil slot is replaced by an empty one.
func NewRelayHandler(tracks TrackSource, tokens *TokenSlot, logger *log.Logger) *RelayHandler {
	if tokens == nil {
		tokens = NewTokenSlot()
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &RelayHandler{
		tokens: tokens,
		tracks: tracks,
		logger: shared.WithLogger(logger, "handler", "relay"),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *RelayHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: h.Home},
		{Method: http.MethodPost, Path: "/api/save-token", Handler: h.SaveToken},
		{Method: http.MethodGet, Path: "/api/user-songs", Handler: h.UserSongs},
	}
}

// Home answers with a fixed welcome message.
func (h *RelayHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(WelcomeMessage))
}

// SaveToken stores the accessToken field of the JSON body, replacing any held token.
//
// A rejected body leaves the held token untouched.
func (h *RelayHandler) SaveToken(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTokenBodyLength))
	if err := dec.Decode(&body); err != nil {
		h.logger.Debug("rejected save-token body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		h.logger.Debug("rejected save-token body", "error", "trailing data after JSON object")
		writeError(w, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	raw, ok := body["accessToken"]
	if !ok || string(raw) == "null" {
		writeError(w, http.StatusBadRequest, msgTokenMissing, nil)
		return
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		h.logger.Debug("accessToken is not a string", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	h.tokens.Store(token)
	h.logger.Info("access token saved", "token", shared.MaskToken(token), "request_id", RequestIDFromContext(r.Context()))

	writeJSON(w, http.StatusOK, MessageResponse{Message: msgTokenSaved})
}

// UserSongs relays the saved tracks of the held token's owner.
//
// Without a held token it answers 401 and makes no upstream call.
func (h *RelayHandler) UserSongs(w http.ResponseWriter, r *http.Request) {
	token, ok := h.tokens.Load()
	if !ok {
		writeError(w, http.StatusUnauthorized, msgNoToken, nil)
		return
	}

	resp, err := h.tracks.SavedTracks(r.Context(), token, r.URL.Query())
	if err != nil {
		var upstreamErr *services.UpstreamError
		if errors.As(err, &upstreamErr) {
			h.logger.Warn("upstream rejected saved tracks request", "status", upstreamErr.StatusCode)
			writeError(w, http.StatusInternalServerError, msgFetchFailed, rawDetails(upstreamErr.Body))
			return
		}

		h.logger.Error("saved tracks request errored", "error", err)
		writeError(w, http.StatusInternalServerError, msgRequestErrored, err.Error())
		return
	}

	w.Header().Set("Content-Type", resp.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(resp.Body)
}
