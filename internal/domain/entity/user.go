package entity

// User is a registered account. Email is unique across the platform;
// Password holds the bcrypt digest, never the plaintext.
//
// The password field is serialized on purpose: the signup and signin
// responses return the stored record as-is.
type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"not null" json:"username"`
	Email     string `gorm:"not null;uniqueIndex" json:"email"`
	Password  string `gorm:"not null" json:"password"`
	CreatedAt int64  `gorm:"not null" json:"createdAt"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}
