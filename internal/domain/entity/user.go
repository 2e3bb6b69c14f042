package entity

// User represents a registered account. OTPSecret is nil for accounts
// provisioned before the second factor was introduced; such accounts
// log in with password only.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"column:username;uniqueIndex:idx_users_username;not null" json:"username"`
	Email        string  `gorm:"column:email;uniqueIndex:idx_users_email;not null" json:"email"`
	PasswordHash string  `gorm:"column:password_hash;not null" json:"-"`
	OTPSecret    *string `gorm:"column:otp_secret" json:"-"`
}

// TableName overrides the default table name
func (User) TableName() string {
	return "users"
}
