// file: mappers/question_mapper.go
package mappers

import (
	"github.com/tom-sartori/ChemistryDeathRace-api/dto"
	"github.com/tom-sartori/ChemistryDeathRace-api/models"
	"github.com/tom-sartori/ChemistryDeathRace-api/services"
)

func MapQuestionReqToModel(req dto.QuestionReq) models.Question {
	propositions := make([]models.Proposition, 0, len(req.Propositions))
	for _, p := range req.Propositions {
		propositions = append(propositions, models.Proposition{
			Name:      p.Name,
			IsCorrect: p.IsCorrect,
			Image:     p.Image,
		})
	}
	return models.Question{
		Name:         req.Name,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Propositions: propositions,
		Image:        req.Image,
	}
}

func MapQuestionStatsToResp(stats []services.QuestionStat) []dto.QuestionStatResp {
	resp := make([]dto.QuestionStatResp, 0, len(stats))
	for _, stat := range stats {
		resp = append(resp, dto.QuestionStatResp{
			QuestionID: stat.QuestionID,
			Name:       stat.Name,
			Difficulty: stat.Difficulty,
			Percentage: stat.Percentage,
		})
	}
	return resp
}
