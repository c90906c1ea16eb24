package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/models"
)

type cacheRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

func NewCacheRepository(db *DB, logger *logger.Logger) LocalCache {
	return &cacheRepository{
		DB:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (c *cacheRepository) Put(ctx context.Context, collection, key string, record models.Row) error {
	log := logger.FromContext(ctx)

	document, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode cached record (%s/%s): %w", collection, key, err)
	}

	query, args, err := c.builder.
		Insert("cache").
		Columns("collection", "key", "document").
		Values(collection, key, string(document)).
		Suffix(`ON CONFLICT (collection, key) DO UPDATE SET
			document   = excluded.document,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Put").
			Str("collection", collection).
			Str("key", key).
			Msg("failed to execute upsert for cached record")
		return fmt.Errorf("failed to put cached record (%s/%s): %w", collection, key, err)
	}

	return nil
}

func (c *cacheRepository) Get(ctx context.Context, collection, key string) (models.Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Select("document").
		From("cache").
		Where(sq.Eq{"collection": collection, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var document string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Get").
			Str("collection", collection).
			Str("key", key).
			Msg("failed to query cached record")
		return nil, fmt.Errorf("failed to query cached record (%s/%s): %w", collection, key, err)
	}

	var record models.Row
	if err = json.Unmarshal([]byte(document), &record); err != nil {
		return nil, fmt.Errorf("decode cached record (%s/%s): %w", collection, key, err)
	}

	return record, nil
}

func (c *cacheRepository) GetAll(ctx context.Context, collection string) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Select("document").
		From("cache").
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.GetAll").
			Str("collection", collection).
			Msg("failed to query cached collection")
		return nil, fmt.Errorf("failed to query cached collection %s: %w", collection, err)
	}
	defer rows.Close()

	records := make([]models.Row, 0)
	for rows.Next() {
		var document string
		if err = rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan cached record: %w", err)
		}

		var record models.Row
		if err = json.Unmarshal([]byte(document), &record); err != nil {
			return nil, fmt.Errorf("decode cached record in %s: %w", collection, err)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating cached records: %w", rowsErr)
	}

	return records, nil
}

func (c *cacheRepository) Delete(ctx context.Context, collection, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Delete("cache").
		Where(sq.Eq{"collection": collection, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Delete").
			Str("collection", collection).
			Str("key", key).
			Msg("failed to delete cached record")
		return fmt.Errorf("failed to delete cached record (%s/%s): %w", collection, key, err)
	}

	return nil
}

func (c *cacheRepository) Clear(ctx context.Context, collection string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Delete("cache").
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Clear").
			Str("collection", collection).
			Msg("failed to clear cached collection")
		return fmt.Errorf("failed to clear cached collection %s: %w", collection, err)
	}

	return nil
}
