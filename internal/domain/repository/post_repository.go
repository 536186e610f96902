package repository

import (
	"context"

	"github.com/ahtasham/user-directory/internal/domain/entity"
)

// PostRepository defines the interface for post persistence.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	// ListWithAuthors returns all posts with their author documents joined
	// in, newest first.
	ListWithAuthors(ctx context.Context) ([]entity.PostWithAuthor, error)
}
