package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"store2070/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate username surfaces as
// gorm.ErrDuplicatedKey (the database enforces uniqueness, callers
// detect the conflict with errors.Is rather than pre-checking).
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by exact username match.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// GetByVerificationToken retrieves a user by exact token match.
func (r *GORMUserRepository) GetByVerificationToken(token string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "verification_token = ?", token).Error; err != nil {
		return nil, fmt.Errorf("failed to get user by verification token: %w", err)
	}
	return &user, nil
}

// MarkVerified sets email_verified and clears the verification token
// so the token cannot be replayed.
func (r *GORMUserRepository) MarkVerified(id uint) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email_verified":     true,
		"verification_token": "",
	})
	if res.Error != nil {
		return fmt.Errorf("failed to mark user %d verified: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %d not found for verification: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
