package model

import "time"

type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:64"`
	Email     string `gorm:"uniqueIndex;size:128;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
}
