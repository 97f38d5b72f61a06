// file: models/game.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer 一次作答记录。QuestionID 只是对题库的引用，不做外键约束：
// 题目被删除后历史作答仍然保留，读取统计时再处理悬空引用
type Answer struct {
	QuestionID string `json:"question_id"`
	IsCorrect  bool   `json:"is_correct"`
}

// Game 一局游戏，用于统计。EndedAt 为空表示游戏仍在进行中
type Game struct {
	ID              string     `gorm:"primarykey;size:36" json:"id"`
	StartedAt       time.Time  `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	Difficulty      string     `gorm:"size:100;not null;index" json:"difficulty"`
	NumberOfPlayers int        `gorm:"not null" json:"number_of_players"`
	DiceSize        int        `gorm:"not null" json:"dice_size"`
	Answers         []Answer   `gorm:"serializer:json;type:json" json:"answers"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Game) TableName() string {
	return "cdr_game"
}

// BeforeCreate GORM Hook，创建时分配 UUID 主键
func (g *Game) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return
}
