package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/auth"
	"github.com/fitme-app/fitme/internal/telemetry/metrics"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
	"github.com/fitme-app/fitme/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionRepo interface {
	AddFoodLog(ctx context.Context, fl FoodLog) (*FoodLog, error)
	DeleteFoodLog(ctx context.Context, userID, id string) error
	AddWaterLog(ctx context.Context, wl WaterLog) (*WaterLog, error)
	Targets(ctx context.Context, userID string) (*Targets, error)
	UpsertTargets(ctx context.Context, t Targets) (*Targets, error)
}

type AddFoodRequest struct {
	FoodName  string         `json:"foodName"`
	Calories  *int           `json:"calories"`
	Protein   *int           `json:"protein"`
	Carbs     *int           `json:"carbs"`
	Fats      *int           `json:"fats"`
	Timestamp *pkg.EventTime `json:"timestamp"`
}

// AddWaterRequest accepts the legacy "count" field too, "amount" wins when both are set.
type AddWaterRequest struct {
	Amount    *int           `json:"amount"`
	Count     *int           `json:"count"`
	Timestamp *pkg.EventTime `json:"timestamp"`
}

type UpsertTargetsRequest struct {
	CalorieTarget *int `json:"calorieTarget"`
	ProteinTarget *int `json:"proteinTarget"`
	CarbsTarget   *int `json:"carbsTarget"`
	FatsTarget    *int `json:"fatsTarget"`
	WaterTarget   *int `json:"waterTarget"`
}

type DeleteFoodResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	repo           nutritionRepo
	metricsManager *metrics.Manager
	now            func() time.Time
	// date-only timestamps are midnight here
	location *time.Location
}

func NewHandler(repo nutritionRepo, metricsManager *metrics.Manager) *Handler {
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
	r.HandleFunc("/nutrition/log", h.HandleAddFood).Methods("POST", "OPTIONS").Name("add-food-log")
	r.HandleFunc("/nutrition/log/{foodId}", h.HandleDeleteFood).Methods("DELETE", "OPTIONS").Name("delete-food-log")
	r.HandleFunc("/nutrition/water", h.HandleAddWater).Methods("POST", "OPTIONS").Name("add-water-log")
	r.HandleFunc("/user/goals", h.HandleGetTargets).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/user/goals", h.HandleUpsertTargets).Methods("POST", "OPTIONS").Name("upsert-goals")
}

func (h *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.food.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add food log, unmarshal json params: %s", err)
		http.Error(w, "add food log failed", http.StatusBadRequest)
		return
	}

	req.FoodName = strings.TrimSpace(req.FoodName)
	if req.FoodName == "" || req.Calories == nil {
		http.Error(w, "error, foodName and calories are required", http.StatusBadRequest)
		return
	}
	if *req.Calories < 0 || isNegative(req.Protein) || isNegative(req.Carbs) || isNegative(req.Fats) {
		http.Error(w, "error, calories and macros must not be negative", http.StatusBadRequest)
		return
	}

	added, err := h.repo.AddFoodLog(ctx, FoodLog{
		UserID:    userID,
		FoodName:  req.FoodName,
		Calories:  *req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fats:      req.Fats,
		Timestamp: h.timestampOrNow(req.Timestamp),
	})
	if err != nil {
		h.writeStoreError(w, "add food log", err)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterFoodLogs.Inc()
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleDeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.food.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	foodID := mux.Vars(r)["foodId"]
	if !pkg.IsCanonicalUUID(foodID) {
		http.Error(w, "error, invalid food log id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteFoodLog(ctx, userID, foodID); err != nil {
		if errors.Is(err, ErrFoodLogNotFound) {
			http.Error(w, "error, food log not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete food log [%s]: %s", foodID, err)
		http.Error(w, "delete food log failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteFoodResponse{DeletedID: foodID}, http.StatusOK)
}

func (h *Handler) HandleAddWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.water.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddWaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add water log, unmarshal json params: %s", err)
		http.Error(w, "add water log failed", http.StatusBadRequest)
		return
	}

	amount := req.Amount
	if amount == nil {
		amount = req.Count
	}
	if amount == nil {
		http.Error(w, "error, amount or count is required", http.StatusBadRequest)
		return
	}
	if *amount < 0 {
		http.Error(w, "error, amount must not be negative", http.StatusBadRequest)
		return
	}

	added, err := h.repo.AddWaterLog(ctx, WaterLog{
		UserID:    userID,
		Amount:    *amount,
		Timestamp: h.timestampOrNow(req.Timestamp),
	})
	if err != nil {
		h.writeStoreError(w, "add water log", err)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterWaterLogs.Inc()
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGetTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.targets.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	targets, err := h.repo.Targets(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrTargetsNotFound) {
			http.Error(w, "error, goals not set", http.StatusNotFound)
			return
		}
		log.Errorf("get targets: %s", err)
		http.Error(w, "get goals failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, targets, http.StatusOK)
}

func (h *Handler) HandleUpsertTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.targets.upsert")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpsertTargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert targets, unmarshal json params: %s", err)
		http.Error(w, "update goals failed", http.StatusBadRequest)
		return
	}

	for _, v := range []*int{req.CalorieTarget, req.ProteinTarget, req.CarbsTarget, req.FatsTarget, req.WaterTarget} {
		if isNegative(v) {
			http.Error(w, "error, goals must not be negative", http.StatusBadRequest)
			return
		}
	}

	updated, err := h.repo.UpsertTargets(ctx, Targets{
		UserID:        userID,
		CalorieTarget: req.CalorieTarget,
		ProteinTarget: req.ProteinTarget,
		CarbsTarget:   req.CarbsTarget,
		FatsTarget:    req.FatsTarget,
		WaterTarget:   req.WaterTarget,
		UpdatedAt:     h.now().UTC(),
	})
	if err != nil {
		h.writeStoreError(w, "upsert targets", err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) timestampOrNow(ts *pkg.EventTime) time.Time {
	if ts == nil || ts.IsZero() {
		return h.now().UTC()
	}
	return ts.In(h.location)
}

func (h *Handler) writeStoreError(w http.ResponseWriter, operation string, err error) {
	if pkg.IsForeignKeyViolationError(err) {
		http.Error(w, "error, unknown user", http.StatusNotFound)
		return
	}
	log.Errorf("%s: %s", operation, err)
	http.Error(w, operation+" failed", http.StatusInternalServerError)
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON)
}

func isNegative(v *int) bool {
	return v != nil && *v < 0
}
