package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/live-sports-service/internal/app/scores"
	appteams "github.com/preston-bernstein/live-sports-service/internal/app/teams"
	"github.com/preston-bernstein/live-sports-service/internal/cache"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/snapshots"
	"github.com/preston-bernstein/live-sports-service/internal/warmer"
)

// SportParam is the route parameter carrying a sport token.
const SportParam = "sportID"

// maxBodyBytes bounds the /sports request body.
const maxBodyBytes = 64 << 10

// SportsRequest is the body accepted by the multi-sport endpoint.
type SportsRequest struct {
	SportIDs []string `json:"sport_ids"`
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	scores   *scores.Service
	teams    *appteams.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler. snaps and statusFn may be nil.
func NewHandler(scoresSvc *scores.Service, teamsSvc *appteams.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		scores:   scoresSvc,
		teams:    teamsSvc,
		snaps:    snaps,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. Without a warmer the service is always ready.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Sport returns the current games for the sport named in the path.
func (h *Handler) Sport(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.sportFromPath(w, r)
	if !ok {
		return
	}
	list, err := h.scores.Sport(r.Context(), sport)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	logging.Debug(loggerFromContext(r, h.logger), "served games",
		logging.FieldSport, sport.String(),
		logging.FieldCount, len(list),
	)
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

// All returns the current games for every supported sport keyed by sport token.
func (h *Handler) All(w nethttp.ResponseWriter, r *nethttp.Request) {
	out, err := h.scores.All(r.Context())
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// Sports returns the current games for the sports listed in the request body.
func (h *Handler) Sports(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req SportsRequest
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		msg := "invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "request body required"
		}
		writeError(w, r, nethttp.StatusBadRequest, msg, h.logger)
		return
	}
	requested, err := sports.ParseList(req.SportIDs)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	out, err := h.scores.Many(r.Context(), requested)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// Teams returns the static team table for the sport named in the path.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.sportFromPath(w, r)
	if !ok {
		return
	}
	list, ok := h.teams.Teams(sport)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "no team table for "+sport.String(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

// Snapshot returns the latest mirrored snapshot for the sport named in the path.
// It never triggers an upstream fetch.
func (h *Handler) Snapshot(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.sportFromPath(w, r)
	if !ok {
		return
	}
	if h.snaps == nil {
		writeError(w, r, nethttp.StatusNotFound, "snapshots disabled", h.logger)
		return
	}
	snap, err := h.snaps.LoadSnapshot(sport)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, r, nethttp.StatusNotFound, "snapshot not found", h.logger)
			return
		}
		logging.Error(loggerFromContext(r, h.logger), "snapshot load failed", err, logging.FieldSport, sport.String())
		writeError(w, r, nethttp.StatusInternalServerError, "snapshot unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, snap, h.logger)
}

func (h *Handler) sportFromPath(w nethttp.ResponseWriter, r *nethttp.Request) (sports.Sport, bool) {
	sport, err := sports.Parse(chi.URLParam(r, SportParam))
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return sports.Sport{}, false
	}
	return sport, true
}

func (h *Handler) writeFetchError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	msg := "failed to fetch scores"
	var args []any
	var failed *cache.FailedSportError
	if errors.As(err, &failed) {
		msg = "failed to fetch scores for " + failed.Sport.String()
		args = append(args, logging.FieldSport, failed.Sport.String())
	}
	logging.Error(loggerFromContext(r, h.logger), "score fetch failed", err, args...)
	writeError(w, r, nethttp.StatusInternalServerError, msg, h.logger)
}
