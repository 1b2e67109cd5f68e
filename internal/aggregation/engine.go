package aggregation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/fitme-app/fitme/internal/nutrition"
	"github.com/fitme-app/fitme/internal/telemetry/metrics"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
	"github.com/fitme-app/fitme/internal/workouts"
	"github.com/fitme-app/fitme/pkg"
)

// Fallback targets, used per field when the user has not set one.
const (
	DefaultCalorieTarget = 2000
	DefaultProteinTarget = 150
	DefaultCarbsTarget   = 200
	DefaultFatsTarget    = 65
	DefaultWaterTarget   = 8
)

// maxStreakDays bounds the backward walk over the calendar.
const maxStreakDays = 365

const (
	operationDailySummary = "daily_summary"
	operationWorkoutStats = "workout_stats"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=aggregation_test

type nutritionStore interface {
	FoodLogsInRange(ctx context.Context, userID string, from, to time.Time) ([]nutrition.FoodLog, error)
	WaterLogsInRange(ctx context.Context, userID string, from, to time.Time) ([]nutrition.WaterLog, error)
	Targets(ctx context.Context, userID string) (*nutrition.Targets, error)
}

type workoutStore interface {
	AllWorkouts(ctx context.Context, userID string) ([]workouts.Workout, error)
}

type Options struct {
	// Location decides where calendar days start and end. Defaults to UTC.
	Location *time.Location
	// Now is the clock used for "today". Defaults to time.Now.
	Now func() time.Time
	// MetricsManager is optional.
	MetricsManager *metrics.Manager
}

// Engine computes read-only summaries over the logged events.
// It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	nutrition      nutritionStore
	workouts       workoutStore
	loc            *time.Location
	now            func() time.Time
	metricsManager *metrics.Manager
}

func NewEngine(nutritionStore nutritionStore, workoutStore workoutStore, opts Options) *Engine {
	e := &Engine{
		nutrition:      nutritionStore,
		workouts:       workoutStore,
		loc:            opts.Location,
		now:            opts.Now,
		metricsManager: opts.MetricsManager,
	}
	if e.loc == nil {
		e.loc = time.UTC
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// DailySummary sums the food and water logged by the user on the given
// calendar date (YYYY-MM-DD) and puts the totals next to the user targets.
func (e *Engine) DailySummary(ctx context.Context, userID, date string) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregation.dailysummary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("date", date),
	)
	defer e.observe(operationDailySummary, time.Now(), &err)

	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	day, err := ParseDate(date, e.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed date [%s]", ErrInvalidInput, date)
	}
	window := NewDayWindow(day, e.loc)

	var (
		foodLogs  []nutrition.FoodLog
		waterLogs []nutrition.WaterLog
		targets   *nutrition.Targets
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if foodLogs, err = e.nutrition.FoodLogsInRange(gCtx, userID, window.Start, window.End); err != nil {
			return fmt.Errorf("fetch food logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if waterLogs, err = e.nutrition.WaterLogsInRange(gCtx, userID, window.Start, window.End); err != nil {
			return fmt.Errorf("fetch water logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		targets, err = e.nutrition.Targets(gCtx, userID)
		if errors.Is(err, nutrition.ErrTargetsNotFound) {
			targets = nil
			return nil
		}
		if err != nil {
			return fmt.Errorf("fetch targets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	foodLogs = inWindow(foodLogs, func(fl nutrition.FoodLog) time.Time { return fl.Timestamp }, window)
	waterLogs = inWindow(waterLogs, func(wl nutrition.WaterLog) time.Time { return wl.Timestamp }, window)

	return summarize(foodLogs, waterLogs, targets), nil
}

func summarize(foodLogs []nutrition.FoodLog, waterLogs []nutrition.WaterLog, targets *nutrition.Targets) *DailySummary {
	summary := &DailySummary{
		FoodItems:  make([]FoodItem, 0, len(foodLogs)),
		WaterItems: make([]WaterItem, 0, len(waterLogs)),
		Totals:     targetsOrDefaults(targets),
	}

	for _, fl := range foodLogs {
		item := FoodItem{
			ID:        fl.ID,
			FoodName:  fl.FoodName,
			Calories:  fl.Calories,
			Protein:   pkg.IntOr(fl.Protein, 0),
			Carbs:     pkg.IntOr(fl.Carbs, 0),
			Fats:      pkg.IntOr(fl.Fats, 0),
			Timestamp: fl.Timestamp.UTC(),
		}
		summary.Totals.TotalCalories += item.Calories
		summary.Totals.TotalProtein += item.Protein
		summary.Totals.TotalCarbs += item.Carbs
		summary.Totals.TotalFats += item.Fats
		summary.FoodItems = append(summary.FoodItems, item)
	}

	for _, wl := range waterLogs {
		summary.Totals.TotalWater += wl.Amount
		summary.WaterItems = append(summary.WaterItems, WaterItem{
			ID:        wl.ID,
			Amount:    wl.Amount,
			Timestamp: wl.Timestamp.UTC(),
		})
	}

	// the store gives no order guarantee, keep the output stable
	sort.SliceStable(summary.FoodItems, func(i, j int) bool {
		a, b := summary.FoodItems[i], summary.FoodItems[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.ID < b.ID
	})
	sort.SliceStable(summary.WaterItems, func(i, j int) bool {
		a, b := summary.WaterItems[i], summary.WaterItems[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.ID < b.ID
	})

	return summary
}

// targetsOrDefaults fills the target half of the totals. A missing or
// non-positive target falls back to its default.
func targetsOrDefaults(t *nutrition.Targets) Totals {
	if t == nil {
		t = &nutrition.Targets{}
	}
	return Totals{
		CalorieTarget: positiveOr(t.CalorieTarget, DefaultCalorieTarget),
		ProteinTarget: positiveOr(t.ProteinTarget, DefaultProteinTarget),
		CarbsTarget:   positiveOr(t.CarbsTarget, DefaultCarbsTarget),
		FatsTarget:    positiveOr(t.FatsTarget, DefaultFatsTarget),
		WaterTarget:   positiveOr(t.WaterTarget, DefaultWaterTarget),
	}
}

func positiveOr(v *int, def int) int {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}

// WorkoutStats reports the current streak and the monthly consistency of the user.
// "Today" comes from the engine clock, seen in the engine location.
func (e *Engine) WorkoutStats(ctx context.Context, userID string) (_ *WorkoutStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregation.workoutstats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user_id", userID))
	defer e.observe(operationWorkoutStats, time.Now(), &err)

	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	all, err := e.workouts.AllWorkouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}

	timestamps := make([]time.Time, 0, len(all))
	for _, w := range all {
		timestamps = append(timestamps, w.Timestamp)
	}

	stats := computeWorkoutStats(timestamps, e.now(), e.loc)
	span.SetAttributes(attribute.Int("streak", stats.CurrentStreak))

	return stats, nil
}

func computeWorkoutStats(timestamps []time.Time, now time.Time, loc *time.Location) *WorkoutStats {
	dates := distinctDates(timestamps, loc)

	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	firstOfMonth := time.Date(y, m, 1, 0, 0, 0, 0, loc).Format(dateLayout)
	firstOfNextMonth := time.Date(y, m+1, 1, 0, 0, 0, 0, loc).Format(dateLayout)

	monthly := 0
	for date := range dates {
		if date >= firstOfMonth && date < firstOfNextMonth {
			monthly++
		}
	}

	// today is at least day 1 of the month, no division by zero
	daysElapsed := d
	consistency := int(math.Round(float64(monthly) / float64(daysElapsed) * 100))

	return &WorkoutStats{
		CurrentStreak:         streak(dates, today),
		MonthlyWorkouts:       monthly,
		ConsistencyPercentage: min(consistency, 100),
		TotalWorkouts:         len(timestamps),
		WorkoutDates:          sortedDesc(dates),
	}
}

// streak walks back from today over consecutive workout days. A missing
// workout today does not break the streak, the walk continues from yesterday.
func streak(dates map[string]struct{}, today time.Time) int {
	count := 0
	cursor := today
	for i := 0; i < maxStreakDays; i++ {
		_, worked := dates[cursor.Format(dateLayout)]
		switch {
		case worked:
			count++
		case i == 0:
			// not yet today
		default:
			return count
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

func (e *Engine) observe(operation string, start time.Time, err *error) {
	if e.metricsManager == nil {
		return
	}
	e.metricsManager.HistogramAggregationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if *err != nil && !IsInvalidInput(*err) {
		e.metricsManager.CounterAggregationErrors.WithLabelValues(operation).Inc()
	}
}
