package models

// User represents an identity in the store.
//
// The password is stored verbatim and compared verbatim on login; this
// is a demo backend, a real deployment would hash with bcrypt and issue
// signed tokens instead of the fixed mock strings in AuthPayload.
type User struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	Username          string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	Password          string `gorm:"type:varchar(255)" validate:"required"` // No json tag for security
	IsAdmin           int    `json:"is_admin" gorm:"default:0"`
	EmailVerified     bool   `json:"email_verified" gorm:"default:false"`
	VerificationToken string `json:"-" gorm:"type:varchar(255)"`
}
