package handlers

import "net/http"

// Routes builds the API mux. Replay routes are only mounted when Replays
// is set.
func Routes(eq *EquipmentHandler, atk *AttackHandler, rp *ReplayHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /api/weapons", eq.Names)
	mux.HandleFunc("GET /api/weapons/{id}", eq.Get)

	mux.HandleFunc("POST /api/attacks", atk.Resolve)

	if rp != nil {
		mux.HandleFunc("GET /api/replays", rp.List)
		mux.HandleFunc("GET /api/replays/{id}", rp.GetReplay)
		mux.HandleFunc("GET /api/replays/{id}/verify", rp.Verify)
		mux.HandleFunc("DELETE /api/replays/{id}", rp.Delete)
	}
	return mux
}
