package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const lessonColumns = "id, title, description, location, price, spaces, rating, image"

type LessonRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLessonRepository(pool *pgxpool.Pool, logger *slog.Logger) *LessonRepository {
	return &LessonRepository{pool: pool, logger: logger}
}

// Search filters and sorts server-side. The sort column comes from the
// domain allow-list, never from raw caller input, so interpolating it into
// the ORDER BY clause is safe.
func (r *LessonRepository) Search(ctx context.Context, q lesson.Query) ([]lesson.Lesson, error) {
	sql := "SELECT " + lessonColumns + " FROM lessons"
	args := []any{}

	if q.Term != "" {
		sql += ` WHERE title ILIKE $1 OR description ILIKE $1 OR location ILIKE $1`
		args = append(args, "%"+q.Term+"%")
		if n, ok := q.NumericTerm(); ok {
			sql += ` OR price = $2 OR spaces = $2`
			args = append(args, n)
		}
	}

	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	sql += fmt.Sprintf(" ORDER BY %s %s", string(q.Sort), dir)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to search lessons", err)
	}
	defer rows.Close()

	var lessons []lesson.Lesson
	for rows.Next() {
		var l lesson.Lesson
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.Location, &l.Price, &l.Spaces, &l.Rating, &l.Image); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan lesson", err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read lessons", err)
	}

	return lessons, nil
}

// DecrementSpaces is the bounded subtract: one conditional UPDATE, so two
// concurrent checkouts can never over-allocate the same seats.
func (r *LessonRepository) DecrementSpaces(ctx context.Context, lessonID int64, quantity int32) (*lesson.Lesson, error) {
	const sql = `
		UPDATE lessons
		SET spaces = GREATEST(spaces - $2, 0)
		WHERE id = $1
		RETURNING ` + lessonColumns

	var l lesson.Lesson
	err := r.pool.QueryRow(ctx, sql, lessonID, quantity).
		Scan(&l.ID, &l.Title, &l.Description, &l.Location, &l.Price, &l.Spaces, &l.Rating, &l.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "lesson not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decrement spaces", err)
	}

	return &l, nil
}

// ReplaceAll reseeds the catalog in one transaction: existing rows are
// dropped first (destructive).
func (r *LessonRepository) ReplaceAll(ctx context.Context, lessons []lesson.Lesson) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, "DELETE FROM lessons"); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear lessons", err)
	}

	rows := make([][]any, len(lessons))
	for i, l := range lessons {
		rows[i] = []any{l.ID, l.Title, l.Description, l.Location, l.Price, l.Spaces, l.Rating, l.Image}
	}

	count, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"lessons"},
		[]string{"id", "title", "description", "location", "price", "spaces", "rating", "image"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert lessons", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to commit reseed", err)
	}

	return count, nil
}
