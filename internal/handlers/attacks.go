package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/hexcombat/internal/attack"
	"github.com/JustinWhittecar/hexcombat/internal/equipment"
	"github.com/JustinWhittecar/hexcombat/internal/replay"
	"github.com/JustinWhittecar/hexcombat/internal/terrain"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

// AttackHandler resolves attacks. Store is optional; when set every
// resolution is kept as a replay.
type AttackHandler struct {
	Resolver *attack.Resolver
	Store    *replay.SQLiteStore
	Log      zerolog.Logger
}

func (h *AttackHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req attack.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	rec, err := h.Resolver.Resolve(req)
	if err != nil {
		http.Error(w, err.Error(), attackStatus(err))
		return
	}

	if h.Store != nil {
		if err := h.Store.Save(r.Context(), rec); err != nil {
			h.Log.Error().Err(err).Str("id", rec.ID.String()).Msg("save replay")
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, http.StatusCreated, rec)
}

func attackStatus(err error) int {
	switch {
	case errors.Is(err, equipment.ErrUnknownWeapon):
		return http.StatusNotFound
	case errors.Is(err, attack.ErrOutOfRange),
		errors.Is(err, attack.ErrNoLineOfSight),
		errors.Is(err, attack.ErrImpossibleShot),
		errors.Is(err, weapons.ErrNotAttackWeapon),
		errors.Is(err, weapons.ErrInvalidRateOfFire):
		return http.StatusUnprocessableEntity
	case errors.Is(err, terrain.ErrUnresolvedHex):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
