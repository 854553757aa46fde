package repository

import (
	"context"

	"lucidscript/internal/app/model"
)

// ExportDAO persists export history.
type ExportDAO interface {
	Close() error

	// Record stores rec and returns its new id.
	Record(ctx context.Context, rec *model.ExportRecord) (int64, error)

	Get(ctx context.Context, id int64) (*model.ExportRecord, error)

	// List returns the newest records first.
	List(ctx context.Context, limit int) ([]model.ExportRecord, error)
}

// Scanner is implemented by DAOs that can page through history in id order.
type Scanner interface {
	ListAfter(ctx context.Context, afterID int64, limit int) ([]model.ExportRecord, error)
}
