package entity

type Note struct {
	ID        string `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"not null" json:"userId"` // References: users(id)
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"not null" json:"content"`
	Status    bool   `gorm:"not null;default:false" json:"status"`
	CreatedAt int64  `gorm:"not null" json:"createdAt"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}
