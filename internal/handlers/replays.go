package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/hexcombat/internal/replay"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

type ReplayHandler struct {
	Store  *replay.SQLiteStore
	Engine *weapons.Engine
}

const defaultReplayLimit = 50

func (h *ReplayHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultReplayLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	list, err := h.Store.List(r.Context(), limit)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReplayHandler) GetReplay(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writeJSON(w, http.StatusOK, rec)
}

// Verify re-runs a stored replay and reports whether it reproduces.
func (h *ReplayHandler) Verify(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.load(w, r)
	if !ok {
		return
	}
	resp := struct {
		ID       uuid.UUID `json:"id"`
		Verified bool      `json:"verified"`
		Error    string    `json:"error,omitempty"`
	}{ID: rec.ID, Verified: true}
	if err := replay.Verify(h.Engine, rec); err != nil {
		resp.Verified = false
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ReplayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	err = h.Store.Delete(r.Context(), id)
	if errors.Is(err, replay.ErrNotFound) {
		http.Error(w, "no replay available", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReplayHandler) load(w http.ResponseWriter, r *http.Request) (*replay.Record, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}
	rec, err := h.Store.Load(r.Context(), id)
	if errors.Is(err, replay.ErrNotFound) {
		http.Error(w, "no replay available", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return nil, false
	}
	return rec, true
}
