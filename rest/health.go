package rest

import (
	"net/http"
	"runtime"
	"time"
)

type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	AllocMemMb    uint64 `json:"alloc_mem_mb"`
	NumGC         uint32 `json:"num_gc"`
	NumGoroutine  int    `json:"num_goroutine"`
}

// GET /health — liveness plus a few Go runtime figures.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	s.sendJSON(w, healthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		AllocMemMb:    m.Alloc / 1024 / 1024,
		NumGC:         m.NumGC,
		NumGoroutine:  runtime.NumGoroutine(),
	}, http.StatusOK)
}
