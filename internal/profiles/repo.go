package profiles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Repo interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Save(ctx context.Context, profile Profile) (Profile, error)
}
