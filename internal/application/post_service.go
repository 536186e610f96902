package application

import (
	"context"
	"strings"

	"github.com/ahtasham/user-directory/internal/domain/entity"
	"github.com/ahtasham/user-directory/internal/domain/repository"
)

// PostService backs the read-only posts surface and seeding. Posts exist to
// demonstrate the single-hop author join; they are not part of the user
// management API.
type PostService struct {
	Posts repository.PostRepository
	Users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{Posts: posts, Users: users}
}

type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
}

// Create inserts a post referencing an existing user as its author.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Messages: []string{"Title is required"}}
	}
	author, err := s.Users.GetByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	p := &entity.Post{
		Title:   title,
		Content: in.Content,
		Author:  author.ID,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all posts with their authors joined and shaped.
func (s *PostService) List(ctx context.Context) ([]entity.PostInfo, error) {
	posts, err := s.Posts.ListWithAuthors(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]entity.PostInfo, 0, len(posts))
	for i := range posts {
		infos = append(infos, posts[i].Info())
	}
	return infos, nil
}
