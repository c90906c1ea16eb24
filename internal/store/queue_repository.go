package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/models"
)

type queueRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

func NewQueueRepository(db *DB, logger *logger.Logger) SyncQueue {
	return &queueRepository{
		DB:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (q *queueRepository) Enqueue(ctx context.Context, table string, op models.Operation, payload models.Row) (int64, error) {
	log := logger.FromContext(ctx)

	if !op.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, op)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encode queued payload for %s: %w", table, err)
	}

	query, args, err := q.builder.
		Insert("sync_queue").
		Columns("tbl", "op", "payload", "enqueued_at").
		Values(table, string(op), string(body), time.Now().UTC()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("table", table).
			Str("op", string(op)).
			Msg("failed to enqueue mutation")
		return 0, fmt.Errorf("failed to enqueue %s on %s: %w", op, table, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read queued mutation id: %w", err)
	}

	return id, nil
}

func (q *queueRepository) ListAll(ctx context.Context) ([]models.Mutation, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.builder.
		Select("id", "tbl", "op", "payload", "enqueued_at").
		From("sync_queue").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ListAll").
			Msg("failed to query sync queue")
		return nil, fmt.Errorf("failed to query sync queue: %w", err)
	}
	defer rows.Close()

	mutations := make([]models.Mutation, 0)
	for rows.Next() {
		var (
			m    models.Mutation
			op   string
			body string
		)
		if err = rows.Scan(&m.ID, &m.Table, &op, &body, &m.EnqueuedAt); err != nil {
			return nil, fmt.Errorf("failed to scan queued mutation: %w", err)
		}

		m.Op = models.Operation(op)
		if err = json.Unmarshal([]byte(body), &m.Payload); err != nil {
			return nil, fmt.Errorf("decode queued payload (id=%d): %w", m.ID, err)
		}

		mutations = append(mutations, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating sync queue rows: %w", rowsErr)
	}

	return mutations, nil
}

func (q *queueRepository) RemoveOne(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := q.builder.
		Delete("sync_queue").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// Removing an unknown id is a no-op: a crash between remote confirmation
	// and local removal must not fail the next replay pass.
	if _, err = q.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.RemoveOne").
			Int64("mutation_id", id).
			Msg("failed to remove queued mutation")
		return fmt.Errorf("failed to remove queued mutation %d: %w", id, err)
	}

	return nil
}

func (q *queueRepository) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := q.builder.Delete("sync_queue").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.ClearAll").
			Msg("failed to clear sync queue")
		return fmt.Errorf("failed to clear sync queue: %w", err)
	}

	return nil
}

func (q *queueRepository) Count(ctx context.Context) (int, error) {
	query, args, err := q.builder.
		Select("COUNT(*)").
		From("sync_queue").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = q.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count queued mutations: %w", err)
	}

	return count, nil
}
