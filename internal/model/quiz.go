package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"size:200;not null"`
	Description string         `json:"description,omitempty" gorm:"size:1000"`
	Subject     string         `json:"subject" gorm:"not null"`
	Difficulty  string         `json:"difficulty" gorm:"not null"` // "easy", "medium", "hard"
	CreatedBy   string         `json:"created_by" gorm:"not null;index"`
	IsPublic    bool           `json:"is_public" gorm:"default:false"`
	Questions   []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
