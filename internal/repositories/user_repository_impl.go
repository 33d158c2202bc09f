package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ysfrando/SQLOtter/internal/models"
	"github.com/ysfrando/SQLOtter/internal/repositories/cache"
	"github.com/ysfrando/SQLOtter/internal/validation"
)

// Columns callers may set through Update. Everything else is skipped
// before any SQL is built.
var userUpdatableColumns = map[string]bool{
	"email":       true,
	"username":    true,
	"is_active":   true,
	"is_verified": true,
}

type userRepository struct {
	db     *Database
	cache  *cache.Service
	logger logrus.FieldLogger
}

// NewUserRepository creates a UserRepository. The cache may be nil to
// disable read caching.
func NewUserRepository(db *Database, cacheSvc *cache.Service, logger logrus.FieldLogger) UserRepository {
	return &userRepository{db: db, cache: cacheSvc, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, email, username, passwordHash string) (*models.User, error) {
	if !validation.ValidateEmail(email) {
		r.logger.WithField("email", email).Warn("rejected invalid email format")
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if !validation.ValidateUsername(username) {
		r.logger.WithField("username", username).Warn("rejected invalid username format")
		return nil, fmt.Errorf("%w: invalid username format", ErrInvalidInput)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: missing password hash", ErrInvalidInput)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := r.db.Session(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.WithField("username", username).Warn("duplicate email or username")
			return nil, ErrDuplicateUser
		}
		r.logger.WithError(err).Error("failed to create user")
		return nil, fmt.Errorf("%w: create user", ErrDatabaseOperation)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if !validation.ValidateUUID(id) {
		r.logger.WithField("user_id", id).Warn("rejected invalid user id")
		return nil, fmt.Errorf("%w: invalid user id format", ErrInvalidInput)
	}

	if r.cache != nil {
		if user, err := r.cache.GetUser(ctx, id); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.Session(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.WithError(err).Error("failed to fetch user by id")
		return nil, fmt.Errorf("%w: get user", ErrDatabaseOperation)
	}

	if r.cache != nil {
		if err := r.cache.SetUser(ctx, &user); err != nil {
			r.logger.WithError(err).Warn("failed to cache user")
		}
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if !validation.ValidateEmail(email) {
		r.logger.WithField("email", email).Warn("rejected invalid email format")
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	var user models.User
	if err := r.db.Session(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.WithError(err).Error("failed to fetch user by email")
		return nil, fmt.Errorf("%w: get user", ErrDatabaseOperation)
	}
	return &user, nil
}

func (r *userRepository) Search(ctx context.Context, term string, limit int) ([]*models.User, error) {
	term = validation.SanitizeString(term)
	limit = clampLimit(limit)

	// The term travels as a bound parameter; escaping only keeps LIKE
	// wildcards literal.
	pattern := "%" + validation.EscapeLike(term) + "%"

	var users []*models.User
	err := r.db.Session(ctx).
		Where("username ILIKE ? OR email ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		r.logger.WithError(err).Error("failed to search users")
		return nil, fmt.Errorf("%w: search users", ErrDatabaseOperation)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	if !validation.ValidateUUID(id) {
		r.logger.WithField("user_id", id).Warn("rejected invalid user id")
		return false, fmt.Errorf("%w: invalid user id format", ErrInvalidInput)
	}

	updates := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		if !userUpdatableColumns[field] {
			continue
		}
		switch field {
		case "email":
			s, ok := value.(string)
			if !ok || !validation.ValidateEmail(s) {
				r.logger.WithField("email", value).Warn("rejected invalid email format")
				return false, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
			}
		case "username":
			s, ok := value.(string)
			if !ok || !validation.ValidateUsername(s) {
				r.logger.WithField("username", value).Warn("rejected invalid username format")
				return false, fmt.Errorf("%w: invalid username format", ErrInvalidInput)
			}
		}
		updates[field] = value
	}
	if len(updates) == 0 {
		return false, nil
	}

	res := r.db.Session(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			r.logger.WithField("user_id", id).Warn("duplicate email or username on update")
			return false, ErrDuplicateUser
		}
		r.logger.WithError(res.Error).Error("failed to update user")
		return false, fmt.Errorf("%w: update user", ErrDatabaseOperation)
	}

	if r.cache != nil {
		if err := r.cache.InvalidateUser(ctx, id); err != nil {
			r.logger.WithError(err).Warn("failed to invalidate user cache")
		}
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) List(ctx context.Context, offset, limit int, orderBy string) ([]*models.User, int64, error) {
	if orderBy == "" {
		orderBy = "created_at"
	}
	// Sort keys are identifiers, not values, so they go through the
	// whitelist instead of parameter binding.
	if !AllowedColumn("users", orderBy) {
		r.logger.WithField("order_by", orderBy).Warn("rejected sort column")
		return nil, 0, fmt.Errorf("%w: invalid sort column", ErrInvalidInput)
	}
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	session := r.db.Session(ctx)

	var total int64
	if err := session.Model(&models.User{}).Count(&total).Error; err != nil {
		r.logger.WithError(err).Error("failed to count users")
		return nil, 0, fmt.Errorf("%w: list users", ErrDatabaseOperation)
	}

	var users []*models.User
	err := session.Order(orderBy).Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		r.logger.WithError(err).Error("failed to list users")
		return nil, 0, fmt.Errorf("%w: list users", ErrDatabaseOperation)
	}
	return users, total, nil
}

// clampLimit bounds a caller-supplied page size to 1..100.
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 100 {
		return 100
	}
	return limit
}
