package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahtasham/user-directory/internal/domain/entity"
	"github.com/ahtasham/user-directory/internal/domain/repository"
)

// mockUserRepo is an in-memory UserRepository. It enforces email uniqueness
// on write, the same way the real store's unique index does.
type mockUserRepo struct {
	users map[string]*entity.User
	now   time.Time
}

func newMockRepo() *mockUserRepo {
	return &mockUserRepo{
		users: make(map[string]*entity.User),
		now:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *mockUserRepo) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *mockUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = m.tick()
	u.UpdatedAt = u.CreatedAt
	stored := *u
	m.users[u.ID.Hex()] = &stored
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email, excludeID string) (*entity.User, error) {
	for id, u := range m.users {
		if u.Email == email && id != excludeID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *entity.User) error {
	ex, ok := m.users[u.ID.Hex()]
	if !ok {
		return repository.ErrNotFound
	}
	for id, other := range m.users {
		if id != u.ID.Hex() && other.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.CreatedAt = ex.CreatedAt
	u.UpdatedAt = m.tick()
	stored := *u
	m.users[u.ID.Hex()] = &stored
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) (*entity.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.users, id)
	return u, nil
}

func (m *mockUserRepo) Find(_ context.Context, q repository.ListQuery) ([]entity.User, int64, error) {
	needle := strings.ToLower(q.Search)
	matches := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) ||
			strings.Contains(u.Email, needle) {
			matches = append(matches, *u)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		var less bool
		switch q.SortField {
		case "firstName":
			less = matches[i].FirstName < matches[j].FirstName
		default:
			less = matches[i].CreatedAt.Before(matches[j].CreatedAt)
		}
		if q.SortDesc {
			return !less
		}
		return less
	})
	total := int64(len(matches))
	if q.Skip >= total {
		return []entity.User{}, total, nil
	}
	matches = matches[q.Skip:]
	if q.Limit > 0 && int64(len(matches)) > q.Limit {
		matches = matches[:q.Limit]
	}
	return matches, total, nil
}

func (m *mockUserRepo) FindActive(_ context.Context) ([]entity.User, error) {
	res := make([]entity.User, 0)
	for _, u := range m.users {
		if u.IsActive {
			res = append(res, *u)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func newTestService() (*Service, *mockUserRepo) {
	repo := newMockRepo()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(repo, logger), repo
}

func TestCreateNormalizesAndDefaults(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserInput{
		FirstName: "  Ahtasham ",
		LastName:  "Khan",
		Email:     "A@Example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", u.Email)
	assert.Equal(t, "Ahtasham", u.FirstName)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.Equal(t, "Ahtasham Khan", u.FullName())

	got, err := svc.Get(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)
}

func TestCreateDuplicateEmailIsRejected(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{FirstName: "A", LastName: "B", Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserInput{FirstName: "C", LastName: "D", Email: "DUP@Example.COM"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.Len(t, repo.users, 1)
}

func TestCreateCollectsAllValidationMessages(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), CreateUserInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"First name is required",
		"Last name is required",
		"Email is required",
	}, verr.Messages)
	assert.Empty(t, repo.users, "no record may be persisted on validation failure")
}

func TestCreateRejectsAgeOutOfRange(t *testing.T) {
	svc, repo := newTestService()
	age := 150

	_, err := svc.Create(context.Background(), CreateUserInput{
		FirstName: "A", LastName: "B", Email: "a@example.com", Age: &age,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Age cannot be more than 120")
	assert.Empty(t, repo.users)
}

func TestUpdatePartialLeavesOtherFieldsUnchanged(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	age := 30
	u, err := svc.Create(ctx, CreateUserInput{
		FirstName: "Ahtasham", LastName: "Khan", Email: "a@example.com", Age: &age, Role: "moderator",
	})
	require.NoError(t, err)

	last := "Ali"
	got, err := svc.Update(ctx, u.ID.Hex(), UpdateUserInput{LastName: &last})
	require.NoError(t, err)

	assert.Equal(t, "Ahtasham", got.FirstName)
	assert.Equal(t, "Ali", got.LastName)
	assert.Equal(t, "a@example.com", got.Email)
	require.NotNil(t, got.Age)
	assert.Equal(t, 30, *got.Age)
	assert.Equal(t, entity.RoleModerator, got.Role)
	assert.True(t, got.IsActive)
}

func TestUpdateEmailUniquenessExcludesSelf(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateUserInput{FirstName: "A", LastName: "One", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserInput{FirstName: "B", LastName: "Two", Email: "b@example.com"})
	require.NoError(t, err)

	// Re-submitting the same email for yourself is not a conflict
	same := "A@example.com"
	_, err = svc.Update(ctx, a.ID.Hex(), UpdateUserInput{Email: &same})
	assert.NoError(t, err)

	// Taking another record's email is
	taken := "b@example.com"
	_, err = svc.Update(ctx, a.ID.Hex(), UpdateUserInput{Email: &taken})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUpdateValidatesPresentFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserInput{FirstName: "A", LastName: "B", Email: "a@example.com"})
	require.NoError(t, err)

	bad := "not-an-email"
	_, err = svc.Update(ctx, u.ID.Hex(), UpdateUserInput{Email: &bad})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Please enter a valid email")
}

func TestUpdateUnknownAndMalformedIDs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	name := "X"
	_, err := svc.Update(ctx, "not-a-hex-id", UpdateUserInput{FirstName: &name})
	assert.ErrorIs(t, err, repository.ErrInvalidID)

	_, err = svc.Update(ctx, primitive.NewObjectID().Hex(), UpdateUserInput{FirstName: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteReturnsSummaryAndRemoves(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserInput{FirstName: "Ahtasham", LastName: "Khan", Email: "a@example.com"})
	require.NoError(t, err)

	summary, err := svc.Delete(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), summary.ID)
	assert.Equal(t, "Ahtasham Khan", summary.FullName)
	assert.Equal(t, "a@example.com", summary.Email)

	_, err = svc.Get(ctx, u.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Delete(ctx, u.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteNonExistentLeavesStoreUnchanged(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{FirstName: "A", LastName: "B", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Len(t, repo.users, 1)
}

func seedUsers(t *testing.T, svc *Service, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), CreateUserInput{
			FirstName: fmt.Sprintf("User%02d", i),
			LastName:  "Test",
			Email:     fmt.Sprintf("user%02d@example.com", i),
		})
		require.NoError(t, err)
	}
}

func TestListPagination(t *testing.T) {
	svc, _ := newTestService()
	seedUsers(t, svc, 25)

	users, pg, err := svc.List(context.Background(), ListParams{
		Page: 3, Limit: 10, Sort: DefaultSort, Order: "asc",
	})
	require.NoError(t, err)

	assert.Len(t, users, 5)
	assert.Equal(t, 3, pg.CurrentPage)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, int64(25), pg.TotalItems)
	assert.Equal(t, 10, pg.ItemsPerPage)
	// ascending createdAt: page 3 starts at the 21st created record
	assert.Equal(t, "user20@example.com", users[0].Email)
}

func TestListEmptyResultIsNotAnError(t *testing.T) {
	svc, _ := newTestService()

	users, pg, err := svc.List(context.Background(), ListParams{
		Page: 1, Limit: 10, Sort: DefaultSort, Order: DefaultOrder,
	})
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, int64(0), pg.TotalItems)
	assert.Equal(t, 0, pg.TotalPages)
}

func TestListSearchMatchesSubstring(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, in := range []CreateUserInput{
		{FirstName: "Ahtasham", LastName: "Khan", Email: "ahtasham@example.com"},
		{FirstName: "Sara", LastName: "Ahmed", Email: "sara@example.com"},
		{FirstName: "Bob", LastName: "Stone", Email: "bob@example.com"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	users, pg, err := svc.List(ctx, ListParams{
		Page: 1, Limit: 10, Sort: DefaultSort, Order: DefaultOrder, Search: "AH",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pg.TotalItems)
	for _, u := range users {
		match := strings.Contains(strings.ToLower(u.FullName), "ah") ||
			strings.Contains(u.Email, "ah")
		assert.True(t, match, "user %s does not match search", u.Email)
	}
}

func TestListActiveCountsOnlyActive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateUserInput{FirstName: "A", LastName: "One", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserInput{FirstName: "B", LastName: "Two", Email: "b@example.com"})
	require.NoError(t, err)

	off := false
	_, err = svc.Update(ctx, a.ID.Hex(), UpdateUserInput{IsActive: &off})
	require.NoError(t, err)

	users, count, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, users, 1)
	assert.Equal(t, "b@example.com", users[0].Email)
}
