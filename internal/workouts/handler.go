package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/auth"
	"github.com/fitme-app/fitme/internal/telemetry/metrics"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
	"github.com/fitme-app/fitme/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddWorkout(ctx context.Context, w Workout) (*Workout, error)
	ListWorkouts(ctx context.Context, userID string, page, size int) ([]Workout, error)
	CountWorkouts(ctx context.Context, userID string) (int, error)
}

const maxPageSize = 200

// AddWorkoutRequest mirrors what the mobile app has been sending over time,
// so a few fields are aliases of each other. Date is RFC3339 or YYYY-MM-DD.
type AddWorkoutRequest struct {
	WorkoutName     string         `json:"workoutName"`
	WorkoutType     string         `json:"workoutType"`
	Duration        *int           `json:"duration"`
	DurationMinutes *int           `json:"durationMinutes"`
	CaloriesBurned  *int           `json:"caloriesBurned"`
	Date            *pkg.EventTime `json:"date"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
	now            func() time.Time
	// date-only workout dates are midnight here
	location *time.Location
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
		location:       time.UTC,
	}
}

func (h *Handler) WithLocation(loc *time.Location) *Handler {
	if loc != nil {
		h.location = loc
	}
	return h
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress/workout-complete", h.HandleAddWorkout).Methods("POST", "OPTIONS").Name("add-workout")
	r.HandleFunc("/progress/workouts/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
}

func (h *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	workout := req.toWorkout(userID, h.now().UTC(), h.location)
	if isNegative(workout.DurationMinutes) || isNegative(workout.CaloriesBurned) {
		http.Error(w, "error, duration and calories must not be negative", http.StatusBadRequest)
		return
	}

	added, err := h.repo.AddWorkout(ctx, workout)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown user", http.StatusNotFound)
			return
		}
		log.Errorf("add workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterWorkouts.Inc()
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list workouts, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list workouts, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 || size > maxPageSize {
		http.Error(w, "invalid size (has to be between 1 and 200)", http.StatusBadRequest)
		return
	}

	workouts, err := h.repo.ListWorkouts(ctx, userID, page, size)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	total, err := h.repo.CountWorkouts(ctx, userID)
	if err != nil {
		log.Errorf("count workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Workouts: workouts,
		Total:    total,
	}, http.StatusOK)
}

func (req AddWorkoutRequest) toWorkout(userID string, now time.Time, loc *time.Location) Workout {
	name := strings.TrimSpace(req.WorkoutName)
	if name == "" {
		name = strings.TrimSpace(req.WorkoutType)
	}
	if name == "" {
		name = DefaultWorkoutName
	}

	duration := req.Duration
	if duration == nil {
		duration = req.DurationMinutes
	}

	ts := now
	if req.Date != nil && !req.Date.IsZero() {
		ts = req.Date.In(loc)
	}

	return Workout{
		UserID:          userID,
		Name:            name,
		DurationMinutes: duration,
		CaloriesBurned:  req.CaloriesBurned,
		Timestamp:       ts,
	}
}

func isNegative(v *int) bool {
	return v != nil && *v < 0
}
