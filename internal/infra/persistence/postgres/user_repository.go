package postgres

import (
	"context"
	"time"

	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"
	"delicious/internal/errors"
	"delicious/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user with their hearts.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by id", "id = ?", id)
}

// FindByEmail retrieves a single user by normalized email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by email", "email = ?", entity.NormalizeEmail(email))
}

// FindByValidResetToken returns the holder of a token that expires after now.
func (repo *userRepository) FindByValidResetToken(ctx context.Context, token string, now time.Time) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by reset token",
		"reset_token = ? AND reset_token_expires_at > ?", token, now)
}

func (repo *userRepository) first(ctx context.Context, details string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Hearts").
		Where(query, args...).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, translateError(err, details)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.Email = entity.NormalizeEmail(userM.Email)

	if err := repo.db.WithContext(ctx).Omit("Hearts").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return translateError(err, "failed to create user")
	}

	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile changes the name and email of a user.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	email := entity.NormalizeEmail(user.Email)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"email":      email,
			"updated_at": now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return translateError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.Email = email
	user.UpdatedAt = now

	return nil
}

// SetResetToken stores the token and its expiry in a single statement.
func (repo *userRepository) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reset_token":            token,
			"reset_token_expires_at": expiresAt,
			"updated_at":             time.Now().UTC(),
		})
	if result.Error != nil {
		return translateError(result.Error, "failed to set reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ConsumeResetToken swaps the password and clears the token only while the
// stored token still matches and has not expired. Concurrent consumers race on
// the row; exactly one sees a row affected.
func (repo *userRepository) ConsumeResetToken(
	ctx context.Context,
	userID uuid.UUID,
	token, passwordHash string,
	now time.Time,
) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND reset_token = ? AND reset_token_expires_at > ?", userID, token, now).
		Updates(map[string]any{
			"password_hash":          passwordHash,
			"reset_token":            nil,
			"reset_token_expires_at": nil,
			"updated_at":             now,
		})
	if result.Error != nil {
		return nil, translateError(result.Error, "failed to consume reset token")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrResetTokenRejected
	}

	return repo.FindByID(ctx, userID)
}

// ToggleFavorite removes the heart when present, otherwise adds it.
func (repo *userRepository) ToggleFavorite(ctx context.Context, userID, storeID uuid.UUID) (bool, error) {
	db := repo.db.WithContext(ctx)

	removed := db.Where("user_id = ? AND store_id = ?", userID, storeID).Delete(&model.UserHeartModel{})
	if removed.Error != nil {
		return false, translateError(removed.Error, "failed to remove heart")
	}
	if removed.RowsAffected > 0 {
		return false, nil
	}

	heart := &model.UserHeartModel{UserID: userID, StoreID: storeID, CreatedAt: time.Now().UTC()}
	if err := db.Create(heart).Error; err != nil {
		// A concurrent toggle inserted it first; it is a favorite either way.
		if isUniqueConstraintViolation(err) {
			return true, nil
		}

		return false, translateError(err, "failed to add heart")
	}

	return true, nil
}
