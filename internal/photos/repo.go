package photos

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

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

func (r *Repo) Add(ctx context.Context, p Photo) (_ *Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO progress_photo (user_id, image_url, caption, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`, p.UserID, p.ImageURL, p.Caption, p.Timestamp).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert progress photo: %w", err)
	}

	return &p, nil
}

// List returns all photos of the user, newest first.
func (r *Repo) List(ctx context.Context, userID string) (_ []Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, image_url, caption, timestamp
		FROM progress_photo
		WHERE user_id = $1
		ORDER BY timestamp DESC, id;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query progress photos: %w", err)
	}
	defer rows.Close()

	photos := make([]Photo, 0)
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.ImageURL, &p.Caption, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("scan progress photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress photos: %w", err)
	}

	return photos, nil
}
