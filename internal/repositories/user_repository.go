package repositories

import "store2070/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByVerificationToken(token string) (*models.User, error)
	// MarkVerified flips the verified flag and clears the one-time
	// verification token in a single update.
	MarkVerified(id uint) error
}
