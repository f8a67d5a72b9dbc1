package devstore

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type draftRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"max=100000"`
}

type handler struct {
	store    *Store
	validate *validator.Validate
	log      zerolog.Logger
}

// NewHandler routes the CRUD note surface onto store.
func NewHandler(store *Store, logger zerolog.Logger) http.Handler {
	h := &handler{
		store:    store,
		validate: validator.New(),
		log:      logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/notes", h.list).Methods(http.MethodGet)
	r.HandleFunc("/notes", h.create).Methods(http.MethodPost)
	r.HandleFunc("/notes/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/notes/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/notes/{id}", h.delete).Methods(http.MethodDelete)
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Use(h.logRequests, cors)
	return r
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	note, err := h.store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.Create(req.Title, req.Content))
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	note, err := h.store.Update(mux.Vars(r)["id"], req.Title, req.Content)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) decodeDraft(w http.ResponseWriter, r *http.Request) (draftRequest, bool) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return draftRequest{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return draftRequest{}, false
	}
	return req, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Note not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// cors lets a browser front-end on another port talk to the dev store.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}
