package scans

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("scan not found")

type Repo interface {
	Create(ctx context.Context, scan Scan) error
	// ListByUser returns the user's scans newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Scan, error)
	Latest(ctx context.Context, userID string) (Scan, error)
	Delete(ctx context.Context, userID, scanID string) error
}
