package profile

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

func (r *Repo) Profile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user_id", userID))

	p := &Profile{}
	err = r.db.QueryRow(ctx, `
		SELECT u.id, u.email, u.name, u.image_url,
		       p.age, p.height, p.weight, p.gender,
		       GREATEST(u.updated_at, p.updated_at)
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.id = $1;
	`, userID).Scan(
		&p.UserID, &p.Email, &p.Name, &p.ImageURL,
		&p.Age, &p.Height, &p.Weight, &p.Gender,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return p, nil
}

// UpsertProfile writes name and image on the user row and the measurements on
// its profile row, creating the latter on first use. Users themselves are only
// created by the auth service.
func (r *Repo) UpsertProfile(ctx context.Context, u ProfileUpdate) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user_id", u.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	now := time.Now().UTC()
	p := &Profile{}
	err = tx.QueryRow(ctx, `
		UPDATE users
		SET name       = COALESCE($2, name),
		    image_url  = COALESCE($3, image_url),
		    updated_at = $4
		WHERE id = $1
		RETURNING id, email, name, image_url;
	`, u.UserID, u.Name, u.ImageURL, now).Scan(&p.UserID, &p.Email, &p.Name, &p.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO user_profiles (user_id, age, height, weight, gender, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET age        = COALESCE(EXCLUDED.age, user_profiles.age),
		    height     = COALESCE(EXCLUDED.height, user_profiles.height),
		    weight     = COALESCE(EXCLUDED.weight, user_profiles.weight),
		    gender     = COALESCE(EXCLUDED.gender, user_profiles.gender),
		    updated_at = EXCLUDED.updated_at
		RETURNING age, height, weight, gender, updated_at;
	`, u.UserID, u.Age, u.Height, u.Weight, u.Gender, now).Scan(
		&p.Age, &p.Height, &p.Weight, &p.Gender, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user profile: %w", err)
	}

	return p, nil
}

func (r *Repo) Settings(ctx context.Context, userID string) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.settings.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	s := &Settings{}
	err = r.db.QueryRow(ctx, `
		SELECT theme_mode, notifications_enabled
		FROM users
		WHERE id = $1;
	`, userID).Scan(&s.ThemeMode, &s.NotificationsEnabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}

	return s, nil
}

func (r *Repo) UpdateSettings(ctx context.Context, userID string, u SettingsUpdate) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.settings.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	s := &Settings{}
	err = r.db.QueryRow(ctx, `
		UPDATE users
		SET theme_mode            = COALESCE($2, theme_mode),
		    notifications_enabled = COALESCE($3, notifications_enabled),
		    updated_at            = now()
		WHERE id = $1
		RETURNING theme_mode, notifications_enabled;
	`, userID, u.ThemeMode, u.NotificationsEnabled).Scan(&s.ThemeMode, &s.NotificationsEnabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	return s, nil
}
