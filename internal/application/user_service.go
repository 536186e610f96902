package application

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ahtasham/user-directory/internal/domain/entity"
	"github.com/ahtasham/user-directory/internal/domain/repository"
	"github.com/ahtasham/user-directory/pkg/response"
	"github.com/ahtasham/user-directory/pkg/validation"
)

// ValidationError aggregates every violated field constraint for one
// payload, in struct field order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Service orchestrates user persistence: it normalizes and validates
// payloads, runs the duplicate-email fast path, and delegates to the
// repository. The store's unique email index stays authoritative for the
// race between concurrent writes.
type Service struct {
	Repo     repository.UserRepository
	Logger   *logrus.Logger
	validate *validator.Validate
}

func NewService(repo repository.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger, validate: validation.New()}
}

// userPayload is the normalized candidate record the validator runs on.
type userPayload struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,emailfmt"`
	Age       *int   `json:"age" validate:"omitempty,min=0,max=120"`
	Role      string `json:"role" validate:"omitempty,oneof=user admin moderator"`
}

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       *int
	Role      string
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
	Role      *string
	IsActive  *bool
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) check(p userPayload) error {
	if err := s.validate.Struct(p); err != nil {
		return &ValidationError{Messages: validation.Messages(err)}
	}
	return nil
}

// emailTaken reports whether another record already holds the email,
// leaving excludeID out of the match.
func (s *Service) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	_, err := s.Repo.GetByEmail(ctx, email, excludeID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *Service) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	p := userPayload{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     normalizeEmail(in.Email),
		Age:       in.Age,
		Role:      strings.TrimSpace(in.Role),
	}
	if err := s.check(p); err != nil {
		return nil, err
	}

	taken, err := s.emailTaken(ctx, p.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrDuplicateEmail
	}

	role := entity.Role(p.Role)
	if role == "" {
		role = entity.RoleUser
	}
	u := &entity.User{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Age:       p.Age,
		IsActive:  true,
		Role:      role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "email": u.Email}).Info("user created")
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	emailChanged := false
	if in.Email != nil {
		if email := normalizeEmail(*in.Email); email != u.Email {
			u.Email = email
			emailChanged = true
		}
	}
	if in.Age != nil {
		u.Age = in.Age
	}
	if in.Role != nil {
		u.Role = entity.Role(strings.TrimSpace(*in.Role))
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}

	// Re-validate the merged record so a partial update cannot leave an
	// invalid document behind.
	if err := s.check(userPayload{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Age:       u.Age,
		Role:      string(u.Role),
	}); err != nil {
		return nil, err
	}

	if emailChanged {
		taken, err := s.emailTaken(ctx, u.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, repository.ErrDuplicateEmail
		}
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID.Hex()).Info("user updated")
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) (entity.UserSummary, error) {
	u, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return entity.UserSummary{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user deleted")
	}
	return u.Summary(), nil
}

// List returns one shaped page of users plus pagination metadata. An empty
// result is not an error.
func (s *Service) List(ctx context.Context, p ListParams) ([]entity.UserInfo, response.Pagination, error) {
	users, total, err := s.Repo.Find(ctx, p.Query())
	if err != nil {
		return nil, response.Pagination{}, err
	}
	infos := make([]entity.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, users[i].Info())
	}
	return infos, p.Pagination(total), nil
}

// ListActive returns every active user, unpaginated, with a count.
func (s *Service) ListActive(ctx context.Context) ([]entity.UserInfo, int, error) {
	users, err := s.Repo.FindActive(ctx)
	if err != nil {
		return nil, 0, err
	}
	infos := make([]entity.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, users[i].Info())
	}
	return infos, len(infos), nil
}
