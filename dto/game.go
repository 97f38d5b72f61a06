// file: dto/game.go
package dto

import "time"

// ========== 请求 DTO ==========

type OpenGameReq struct {
	Difficulty      string     `json:"difficulty" binding:"required"`
	NumberOfPlayers int        `json:"number_of_players" binding:"required,min=1"`
	DiceSize        int        `json:"dice_size" binding:"required,min=1"`
	StartedAt       *time.Time `json:"started_at"`
}

type AnswerReq struct {
	QuestionID string `json:"question_id" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

// ========== 响应 DTO ==========

// QuestionStatResp 单个题目的答题正确率
type QuestionStatResp struct {
	QuestionID string  `json:"question_id"`
	Name       string  `json:"name"`
	Difficulty string  `json:"difficulty"`
	Percentage float64 `json:"percentage"`
}
