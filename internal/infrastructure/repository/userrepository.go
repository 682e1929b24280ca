package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/mappers"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (r *UserRepository) first(q *gorm.DB) (*user.User, error) {
	var model models.UserModel
	if err := q.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model), nil
}

// FindByEmail adapts the repository to authorization.UserLookup. Inactive
// accounts return authorization.ErrPrincipalDisabled.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (authorization.Principal, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q not found", email)
	}
	if !u.Active() {
		return nil, fmt.Errorf("user %q: %w", email, authorization.ErrPrincipalDisabled)
	}
	return authorization.User{UserID: u.ID(), UserRole: u.Role(), Email: u.Email()}, nil
}
