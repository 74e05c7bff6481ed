package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"postsched/internal/account"
	"postsched/internal/common"
	"postsched/internal/monitoring"
	"postsched/internal/scheduler"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// SyncTrigger starts a reconciliation pass for one owner.
type SyncTrigger interface {
	Reconcile(ctx context.Context, ownerID uint64) error
}

// Handler is the thin HTTP glue over the schedule, account, and sync
// services.
type Handler struct {
	service    scheduler.ScheduleService
	accounts   account.Service
	reconciler SyncTrigger
}

func NewHandler(service scheduler.ScheduleService, accounts account.Service, reconciler SyncTrigger) *Handler {
	return &Handler{service: service, accounts: accounts, reconciler: reconciler}
}

func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(common.AuthMiddleware)
	apiRouter.Use(instrument)
	apiRouter.HandleFunc("/posts", h.schedulePost).Methods(http.MethodPost)
	apiRouter.HandleFunc("/posts", h.listPosts).Methods(http.MethodGet)
	apiRouter.HandleFunc("/posts/{post_id:[0-9]+}", h.getPost).Methods(http.MethodGet)
	apiRouter.HandleFunc("/posts/{entry_id:[0-9]+}", h.reschedulePost).Methods(http.MethodPut)
	apiRouter.HandleFunc("/sync", h.sync).Methods(http.MethodPost)
	apiRouter.HandleFunc("/account/preferences", h.getPreferences).Methods(http.MethodGet)
	apiRouter.HandleFunc("/account/preferences", h.updatePreferences).Methods(http.MethodPut)
	apiRouter.HandleFunc("/account/credential", h.connectCredential).Methods(http.MethodPut)
	apiRouter.HandleFunc("/account/credential", h.disconnectCredential).Methods(http.MethodDelete)

	return router
}

type scheduleRequest struct {
	Text   string    `json:"text"`
	FireAt time.Time `json:"fire_at"`
}

func (h *Handler) schedulePost(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// First touch provisions the account row the post's owner FK needs.
	if _, err := h.accounts.Ensure(r.Context(), claims.OwnerID, claims.Handle); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Schedule(r.Context(), claims.OwnerID, req.Text, req.FireAt)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	postID, err := strconv.ParseUint(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.service.GetPost(r.Context(), postID, claims.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) reschedulePost(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseUint(mux.Vars(r)["entry_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.Reschedule(r.Context(), entryID, claims.OwnerID, req.Text, req.FireAt)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	posts, err := h.service.ListPosts(r.Context(), claims.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// sync triggers a reconciliation pass for the caller. The staleness gate
// inside the reconciler makes hammering this endpoint harmless.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// A sync touch counts as first touch too.
	if _, err := h.accounts.Ensure(r.Context(), claims.OwnerID, claims.Handle); err != nil {
		writeError(w, err)
		return
	}

	if err := h.reconciler.Reconcile(r.Context(), claims.OwnerID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

type preferencesRequest struct {
	RequirePositiveSentiment bool `json:"require_positive_sentiment"`
	RequireCorrectSpelling   bool `json:"require_correct_spelling"`
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	acct, err := h.accounts.Preferences(r.Context(), claims.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, acct)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	acct, err := h.accounts.UpdatePreferences(r.Context(), claims.OwnerID, claims.Handle,
		req.RequirePositiveSentiment, req.RequireCorrectSpelling)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, acct)
}

type credentialRequest struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty"`
}

func (h *Handler) connectCredential(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.accounts.Connect(r.Context(), claims.OwnerID, claims.Handle,
		req.AccessToken, req.RefreshToken, req.Expiry); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) disconnectCredential(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.accounts.Disconnect(r.Context(), claims.OwnerID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case common.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, common.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case common.IsAuth(err):
		http.Error(w, "remote account not connected", http.StatusConflict)
	case common.IsRemote(err):
		http.Error(w, "remote platform unavailable", http.StatusBadGateway)
	default:
		log.WithError(err).Error("internal error")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		monitoring.HttpRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}
