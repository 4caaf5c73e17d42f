package entity

import (
	"time"
)

// Patient represents a single patient record.
type Patient struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	NHSNumber   string    `gorm:"type:varchar(20);not null"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	DateOfBirth time.Time `gorm:"not null"`
	GPPractice  string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null;default:true"`
}

func (Patient) TableName() string {
	return "patients"
}
