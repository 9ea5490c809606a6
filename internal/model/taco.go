package model

import "time"

// Taco is a single taco posted by a user.
type Taco struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Protein   string    `json:"protein" gorm:"size:255;not null"`
	Shell     string    `json:"shell" gorm:"size:255;not null"`
	Cheese    bool      `json:"cheese" gorm:"not null"`
	Extras    string    `json:"extras" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
