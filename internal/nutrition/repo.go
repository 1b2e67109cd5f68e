package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// FoodLogsInRange returns the user food logs with timestamp in [from, to], in no particular order.
func (r *Repo) FoodLogsInRange(ctx context.Context, userID string, from, to time.Time) (_ []FoodLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.food.inrange")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, food_name, calories, protein, carbs, fats, timestamp
		FROM food_log
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp <= $3;
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query food logs: %w", err)
	}
	defer rows.Close()

	logs := make([]FoodLog, 0)
	for rows.Next() {
		var fl FoodLog
		if err := rows.Scan(
			&fl.ID, &fl.UserID, &fl.FoodName, &fl.Calories,
			&fl.Protein, &fl.Carbs, &fl.Fats, &fl.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		logs = append(logs, fl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read food logs: %w", err)
	}

	return logs, nil
}

// WaterLogsInRange returns the user water logs with timestamp in [from, to], in no particular order.
func (r *Repo) WaterLogsInRange(ctx context.Context, userID string, from, to time.Time) (_ []WaterLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.water.inrange")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, amount, timestamp
		FROM water_log
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp <= $3;
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query water logs: %w", err)
	}
	defer rows.Close()

	logs := make([]WaterLog, 0)
	for rows.Next() {
		var wl WaterLog
		if err := rows.Scan(&wl.ID, &wl.UserID, &wl.Amount, &wl.Timestamp); err != nil {
			return nil, fmt.Errorf("scan water log: %w", err)
		}
		logs = append(logs, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read water logs: %w", err)
	}

	return logs, nil
}

func (r *Repo) Targets(ctx context.Context, userID string) (_ *Targets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.targets.get")
	defer func() {
		// absence is a valid answer, not a failed read
		if errors.Is(err, ErrTargetsNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t := &Targets{}
	err = r.db.QueryRow(ctx, `
		SELECT user_id, calorie_target, protein_target, carbs_target, fats_target, water_target, updated_at
		FROM user_goals
		WHERE user_id = $1;
	`, userID).Scan(
		&t.UserID, &t.CalorieTarget, &t.ProteinTarget, &t.CarbsTarget,
		&t.FatsTarget, &t.WaterTarget, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTargetsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query targets: %w", err)
	}

	return t, nil
}

func (r *Repo) AddFoodLog(ctx context.Context, fl FoodLog) (_ *FoodLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.food.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO food_log (user_id, food_name, calories, protein, carbs, fats, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`,
		fl.UserID, fl.FoodName, fl.Calories,
		fl.Protein, fl.Carbs, fl.Fats, fl.Timestamp,
	).Scan(&fl.ID)
	if err != nil {
		return nil, fmt.Errorf("insert food log: %w", err)
	}

	return &fl, nil
}

// DeleteFoodLog removes the food log only if it belongs to the user.
func (r *Repo) DeleteFoodLog(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.food.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM food_log
		WHERE id = $1 AND user_id = $2;
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete food log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodLogNotFound
	}

	return nil
}

func (r *Repo) AddWaterLog(ctx context.Context, wl WaterLog) (_ *WaterLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.water.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO water_log (user_id, amount, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id;
	`, wl.UserID, wl.Amount, wl.Timestamp).Scan(&wl.ID)
	if err != nil {
		return nil, fmt.Errorf("insert water log: %w", err)
	}

	return &wl, nil
}

func (r *Repo) UpsertTargets(ctx context.Context, t Targets) (_ *Targets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.targets.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO user_goals (user_id, calorie_target, protein_target, carbs_target, fats_target, water_target, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET calorie_target = EXCLUDED.calorie_target,
		    protein_target = EXCLUDED.protein_target,
		    carbs_target   = EXCLUDED.carbs_target,
		    fats_target    = EXCLUDED.fats_target,
		    water_target   = EXCLUDED.water_target,
		    updated_at     = EXCLUDED.updated_at
		RETURNING updated_at;
	`,
		t.UserID, t.CalorieTarget, t.ProteinTarget, t.CarbsTarget,
		t.FatsTarget, t.WaterTarget, t.UpdatedAt,
	).Scan(&t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert targets: %w", err)
	}

	return &t, nil
}
