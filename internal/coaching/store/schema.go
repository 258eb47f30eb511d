package store

// Schema creates the tables the repo reads and writes.
const Schema = `
CREATE TABLE IF NOT EXISTS public.workout_log
(
    id               SERIAL PRIMARY KEY,
    user_id          VARCHAR     NOT NULL,
    date             TIMESTAMPTZ NOT NULL,
    intensity_rating SMALLINT    NOT NULL DEFAULT 0,
    condition_rating SMALLINT    NOT NULL DEFAULT 0,
    fatigue_level    SMALLINT    NOT NULL DEFAULT 0,
    muscle_soreness  SMALLINT    NOT NULL DEFAULT 0,
    sleep_quality    SMALLINT    NOT NULL DEFAULT 0,
    completed        BOOLEAN     NOT NULL DEFAULT FALSE,
    duration_minutes INTEGER     NOT NULL DEFAULT 0,
    category         VARCHAR     NOT NULL DEFAULT '',
    logged_at        TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_workout_log_user_date ON public.workout_log (user_id, date);
CREATE UNIQUE INDEX IF NOT EXISTS ux_workout_log_user_logged_at ON public.workout_log (user_id, logged_at);

CREATE TABLE IF NOT EXISTS public.user_memo
(
    id      SERIAL PRIMARY KEY,
    user_id VARCHAR     NOT NULL,
    date    TIMESTAMPTZ NOT NULL,
    content TEXT        NOT NULL,
    tags    TEXT[]      NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS ix_user_memo_user_date ON public.user_memo (user_id, date);
`
