package delivery

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/quynguyn1525/Translate-Bot/internal/artifact"
)

type StatusHandler struct {
	store     *artifact.Store
	sweeper   *artifact.Sweeper
	log       *logger.ZapLogger
	startedAt time.Time
}

func NewStatusHandler(store *artifact.Store, sweeper *artifact.Sweeper, log *logger.ZapLogger) *StatusHandler {
	return &StatusHandler{
		store:     store,
		sweeper:   sweeper,
		log:       log,
		startedAt: time.Now(),
	}
}

type statusResponse struct {
	Status     string  `json:"status"`
	Uptime     string  `json:"uptime"`
	Goroutines int     `json:"goroutines"`
	CPUPercent float64 `json:"cpu_percent"`
	MemUsedMB  uint64  `json:"mem_used_mb"`
	MemPercent float64 `json:"mem_percent"`

	Artifacts struct {
		Count int   `json:"count"`
		Bytes int64 `json:"bytes"`
	} `json:"artifacts"`

	Sweeper struct {
		LastRun      string `json:"last_run"`
		LastRemoved  int    `json:"last_removed"`
		TotalRemoved int64  `json:"total_removed"`
	} `json:"sweeper"`
}

func (h *StatusHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	var resp statusResponse
	resp.Status = "ok"
	resp.Uptime = time.Since(h.startedAt).Round(time.Second).String()
	resp.Goroutines = runtime.NumGoroutine()

	// host metrics are advisory: a failed probe degrades the report, not the endpoint
	if pct, err := cpu.Percent(0, false); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "cpu stats unavailable", Error: err})
	} else if len(pct) > 0 {
		resp.CPUPercent = pct[0]
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "mem stats unavailable", Error: err})
	} else {
		resp.MemUsedMB = vm.Used / 1024 / 1024
		resp.MemPercent = vm.UsedPercent
	}

	resp.Artifacts.Count, resp.Artifacts.Bytes = h.store.Stats()

	lastRun, lastRemoved := h.sweeper.LastSweep()
	if !lastRun.IsZero() {
		resp.Sweeper.LastRun = lastRun.Format(time.RFC3339)
	}
	resp.Sweeper.LastRemoved = lastRemoved
	resp.Sweeper.TotalRemoved = h.sweeper.TotalRemoved()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
