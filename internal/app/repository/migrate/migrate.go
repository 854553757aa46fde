// Package migrate copies export history between stores, typically from the
// default SQLite file into PostgreSQL.
package migrate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lucidscript/internal/app/repository"
)

const defaultBatchSize = 1000

// Copy moves every record with id > afterID from src to dst in batches and
// returns the last source id copied. Records get new ids in dst.
func Copy(ctx context.Context, src repository.Scanner, dst repository.ExportDAO, afterID int64, batchSize int, logger *zap.Logger) (int64, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	lastID := afterID
	total := 0
	for {
		batch, err := src.ListAfter(ctx, lastID, batchSize)
		if err != nil {
			return lastID, fmt.Errorf("read after id %d: %w", lastID, err)
		}
		if len(batch) == 0 {
			break
		}

		for i := range batch {
			rec := batch[i]
			if _, err := dst.Record(ctx, &rec); err != nil {
				return lastID, fmt.Errorf("copy record %d: %w", rec.ID, err)
			}
			lastID = rec.ID
			total++
		}
		logger.Info("migrated batch", zap.Int("records", len(batch)), zap.Int64("last_id", lastID))

		if len(batch) < batchSize {
			break
		}
	}

	logger.Info("migration finished", zap.Int("records", total), zap.Int64("last_id", lastID))
	return lastID, nil
}
