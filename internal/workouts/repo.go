package workouts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitme-app/fitme/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// AllWorkouts returns the whole workout history of the user, in no particular order.
func (r *Repo) AllWorkouts(ctx context.Context, userID string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.all")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, workout_name, duration, calories_burned, timestamp
		FROM workout_log
		WHERE user_id = $1;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(workouts)))

	return workouts, nil
}

// ListWorkouts returns one page of the user workouts, most recent first. Pages start at 1.
func (r *Repo) ListWorkouts(ctx context.Context, userID string, page, size int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.Int("page", page),
		attribute.Int("size", size),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, workout_name, duration, calories_burned, timestamp
		FROM workout_log
		WHERE user_id = $1
		ORDER BY timestamp DESC, id
		LIMIT $2 OFFSET $3;
	`, userID, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("query workouts page: %w", err)
	}

	return scanWorkouts(rows)
}

func (r *Repo) CountWorkouts(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout_log
		WHERE user_id = $1;
	`, userID).Scan(&count); err != nil {
		return -1, fmt.Errorf("count workouts: %w", err)
	}

	return count, nil
}

func (r *Repo) AddWorkout(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_log (user_id, workout_name, duration, calories_burned, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`,
		w.UserID, w.Name, w.DurationMinutes, w.CaloriesBurned, w.Timestamp,
	).Scan(&w.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return &w, nil
}

func scanWorkouts(rows pgx.Rows) ([]Workout, error) {
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Name,
			&w.DurationMinutes, &w.CaloriesBurned, &w.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read workouts: %w", err)
	}

	return workouts, nil
}
