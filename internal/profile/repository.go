package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	Upsert(ctx context.Context, p *Profile) error
	GetByUser(ctx context.Context, userID string) (*Profile, error)
}
