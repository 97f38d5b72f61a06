// file: models/question.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proposition 题目的一个选项，随 Question 以 JSON 形式嵌入存储
type Proposition struct {
	Name      string `json:"name"`
	IsCorrect bool   `json:"is_correct"`
	Image     string `json:"image,omitempty"`
}

type Question struct {
	ID           string        `gorm:"primarykey;size:36" json:"id"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	Category     string        `gorm:"size:100;not null;index" json:"category"`
	Difficulty   string        `gorm:"size:100;not null;index" json:"difficulty"`
	Propositions []Proposition `gorm:"serializer:json;type:json" json:"propositions"`
	Image        string        `gorm:"size:255" json:"image,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (Question) TableName() string {
	return "cdr_question"
}

// BeforeCreate GORM Hook，创建时分配 UUID 主键
func (q *Question) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return
}
