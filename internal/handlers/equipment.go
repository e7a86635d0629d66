// Package handlers serves the combat resolution HTTP API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/JustinWhittecar/hexcombat/internal/equipment"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

type EquipmentHandler struct {
	Registry *equipment.Registry
}

type WeaponName struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Family weapons.Family `json:"family"`
}

// Names lists registered weapons, optionally filtered by a name fragment
// (?q=) and a family (?family=).
func (h *EquipmentHandler) Names(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	ids := h.Registry.IDs()
	if fam := r.URL.Query().Get("family"); fam != "" {
		f, err := weapons.ParseFamily(fam)
		if err != nil {
			http.Error(w, "Unknown family", http.StatusBadRequest)
			return
		}
		ids = h.Registry.ByFamily(f)
	}

	names := []WeaponName{}
	for _, id := range ids {
		wpn, err := h.Registry.Lookup(id)
		if err != nil {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(wpn.ID+" "+wpn.Name), q) {
			continue
		}
		names = append(names, WeaponName{ID: wpn.ID, Name: wpn.Name, Family: wpn.Family})
	}
	writeJSON(w, http.StatusOK, names)
}

// Get resolves one weapon by id, name or lookup name.
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	wpn, err := h.Registry.Lookup(r.PathValue("id"))
	if errors.Is(err, equipment.ErrUnknownWeapon) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Lookup error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, wpn)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
