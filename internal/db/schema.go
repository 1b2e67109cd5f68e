package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the FitMe storage layout. Users are created by the external auth service,
// every log row references one. All statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS public.users
(
    id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email      TEXT        NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
ALTER TABLE public.users
    ADD COLUMN IF NOT EXISTS name                  TEXT,
    ADD COLUMN IF NOT EXISTS image_url             TEXT,
    ADD COLUMN IF NOT EXISTS theme_mode            TEXT        NOT NULL DEFAULT 'dark',
    ADD COLUMN IF NOT EXISTS notifications_enabled BOOLEAN     NOT NULL DEFAULT true,
    ADD COLUMN IF NOT EXISTS updated_at            TIMESTAMPTZ NOT NULL DEFAULT now();

CREATE TABLE IF NOT EXISTS public.user_profiles
(
    id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id    UUID        NOT NULL UNIQUE REFERENCES public.users (id) ON DELETE CASCADE,
    age        INTEGER,
    height     DOUBLE PRECISION,
    weight     DOUBLE PRECISION,
    gender     TEXT,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.food_log
(
    id        UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id   UUID        NOT NULL REFERENCES public.users (id) ON DELETE CASCADE,
    food_name TEXT        NOT NULL,
    calories  INTEGER     NOT NULL,
    protein   INTEGER,
    carbs     INTEGER,
    fats      INTEGER,
    timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_food_log_user_timestamp ON public.food_log (user_id, timestamp);

CREATE TABLE IF NOT EXISTS public.water_log
(
    id        UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id   UUID        NOT NULL REFERENCES public.users (id) ON DELETE CASCADE,
    amount    INTEGER     NOT NULL,
    timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_water_log_user_timestamp ON public.water_log (user_id, timestamp);

CREATE TABLE IF NOT EXISTS public.workout_log
(
    id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id         UUID        NOT NULL REFERENCES public.users (id) ON DELETE CASCADE,
    workout_name    TEXT        NOT NULL,
    duration        INTEGER,
    calories_burned INTEGER,
    timestamp       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_log_user_timestamp ON public.workout_log (user_id, timestamp);

CREATE TABLE IF NOT EXISTS public.user_goals
(
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id        UUID        NOT NULL UNIQUE REFERENCES public.users (id) ON DELETE CASCADE,
    calorie_target INTEGER,
    protein_target INTEGER,
    carbs_target   INTEGER,
    fats_target    INTEGER,
    water_target   INTEGER,
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.progress_photo
(
    id        UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id   UUID        NOT NULL REFERENCES public.users (id) ON DELETE CASCADE,
    image_url TEXT        NOT NULL,
    caption   TEXT,
    timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_progress_photo_user_timestamp ON public.progress_photo (user_id, timestamp);
`

func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
