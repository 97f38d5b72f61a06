// file: dto/question.go
package dto

import "strings"

// ========== 请求 DTO ==========

type PropositionReq struct {
	Name      string `json:"name"`
	IsCorrect bool   `json:"is_correct"`
	Image     string `json:"image"`
}

type QuestionReq struct {
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Difficulty   string           `json:"difficulty"`
	Propositions []PropositionReq `json:"propositions"`
	Image        string           `json:"image"`
}

// Normalize 清洗字段，统一去除首尾空白
func (r *QuestionReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	for i := range r.Propositions {
		r.Propositions[i].Name = strings.TrimSpace(r.Propositions[i].Name)
	}
}

// RenameReq 批量重命名请求，新标签放在请求体里
type RenameReq struct {
	NewValue string `json:"new_value" binding:"required"`
}
