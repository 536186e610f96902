package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahtasham/user-directory/internal/domain/entity"
	"github.com/ahtasham/user-directory/internal/domain/repository"
)

// mockPostRepo joins against the user mock's records, mirroring what the
// $lookup pipeline does: posts with a dangling author reference drop out.
type mockPostRepo struct {
	posts []entity.Post
	users *mockUserRepo
}

func (m *mockPostRepo) Create(_ context.Context, p *entity.Post) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.posts = append(m.posts, *p)
	return nil
}

func (m *mockPostRepo) ListWithAuthors(_ context.Context) ([]entity.PostWithAuthor, error) {
	out := make([]entity.PostWithAuthor, 0, len(m.posts))
	for _, p := range m.posts {
		author, ok := m.users.users[p.Author.Hex()]
		if !ok {
			continue
		}
		out = append(out, entity.PostWithAuthor{Post: p, Joined: *author})
	}
	return out, nil
}

var _ repository.PostRepository = (*mockPostRepo)(nil)

func newPostTestService() (*PostService, *Service, *mockUserRepo) {
	userSvc, userRepo := newTestService()
	postRepo := &mockPostRepo{users: userRepo}
	return NewPostService(postRepo, userRepo), userSvc, userRepo
}

func TestCreatePostRequiresExistingAuthor(t *testing.T) {
	postSvc, _, _ := newPostTestService()
	ctx := context.Background()

	_, err := postSvc.Create(ctx, CreatePostInput{Title: "Hello", AuthorID: "bogus"})
	assert.ErrorIs(t, err, repository.ErrInvalidID)

	_, err = postSvc.Create(ctx, CreatePostInput{Title: "Hello", AuthorID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreatePostRequiresTitle(t *testing.T) {
	postSvc, userSvc, _ := newPostTestService()
	ctx := context.Background()

	author, err := userSvc.Create(ctx, CreateUserInput{FirstName: "A", LastName: "B", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = postSvc.Create(ctx, CreatePostInput{Title: "   ", AuthorID: author.ID.Hex()})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Title is required")
}

func TestListPostsEmbedsShapedAuthor(t *testing.T) {
	postSvc, userSvc, _ := newPostTestService()
	ctx := context.Background()

	author, err := userSvc.Create(ctx, CreateUserInput{FirstName: "Ahtasham", LastName: "Khan", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = postSvc.Create(ctx, CreatePostInput{Title: "My first blog", Content: "Hello world", AuthorID: author.ID.Hex()})
	require.NoError(t, err)

	posts, err := postSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "My first blog", posts[0].Title)
	assert.Equal(t, "Ahtasham Khan", posts[0].Author.FullName)
	assert.Equal(t, "a@example.com", posts[0].Author.Email)
	assert.Equal(t, author.ID.Hex(), posts[0].Author.ID)
}

func TestListPostsDropsDanglingAuthors(t *testing.T) {
	postSvc, userSvc, _ := newPostTestService()
	ctx := context.Background()

	author, err := userSvc.Create(ctx, CreateUserInput{FirstName: "A", LastName: "B", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = postSvc.Create(ctx, CreatePostInput{Title: "Orphaned", AuthorID: author.ID.Hex()})
	require.NoError(t, err)

	_, err = userSvc.Delete(ctx, author.ID.Hex())
	require.NoError(t, err)

	posts, err := postSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
