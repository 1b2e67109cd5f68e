package aggregation

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/auth"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
	"github.com/fitme-app/fitme/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=aggregation_test

type aggregator interface {
	DailySummary(ctx context.Context, userID, date string) (*DailySummary, error)
	WorkoutStats(ctx context.Context, userID string) (*WorkoutStats, error)
}

type Handler struct {
	engine aggregator
}

func NewHandler(engine aggregator) *Handler {
	return &Handler{
		engine: engine,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/nutrition/daily/{date}", h.HandleDailySummary).Methods("GET", "OPTIONS").Name("daily-summary")
	r.HandleFunc("/progress/stats", h.HandleWorkoutStats).Methods("GET", "OPTIONS").Name("workout-stats")
}

func (h *Handler) HandleDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aggregation.dailysummary")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date := mux.Vars(r)["date"]
	summary, err := h.engine.DailySummary(ctx, userID, date)
	if err != nil {
		if IsInvalidInput(err) {
			log.Tracef("daily summary [%s]: %s", date, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("daily summary [%s]: %s", date, err)
		http.Error(w, "failed to get daily summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleWorkoutStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aggregation.workoutstats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := h.engine.WorkoutStats(ctx, userID)
	if err != nil {
		if IsInvalidInput(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("workout stats: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}
