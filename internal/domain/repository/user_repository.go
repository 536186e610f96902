package repository

import (
	"context"

	"github.com/ahtasham/user-directory/internal/domain/entity"
)

// ListQuery is the store-agnostic form of a list request: an optional
// search filter plus sort and pagination already resolved to skip/limit.
type ListQuery struct {
	Search    string // case-insensitive substring over firstName/lastName/email
	SortField string
	SortDesc  bool
	Skip      int64
	Limit     int64
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail matches the normalized email; a non-empty excludeID leaves
	// that record out of the match (used when updating a user's own email).
	GetByEmail(ctx context.Context, email, excludeID string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// Delete removes the record and returns it, so callers can shape a
	// summary of what was removed.
	Delete(ctx context.Context, id string) (*entity.User, error)
	// Find returns one page of matching users plus the total match count.
	Find(ctx context.Context, q ListQuery) ([]entity.User, int64, error)
	FindActive(ctx context.Context) ([]entity.User, error)
}
