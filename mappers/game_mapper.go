// file: mappers/game_mapper.go
package mappers

import (
	"github.com/tom-sartori/ChemistryDeathRace-api/dto"
	"github.com/tom-sartori/ChemistryDeathRace-api/models"
)

func MapOpenGameReqToModel(req dto.OpenGameReq) models.Game {
	game := models.Game{
		Difficulty:      req.Difficulty,
		NumberOfPlayers: req.NumberOfPlayers,
		DiceSize:        req.DiceSize,
	}
	if req.StartedAt != nil {
		game.StartedAt = *req.StartedAt
	}
	return game
}

func MapAnswerReqToModel(req dto.AnswerReq) models.Answer {
	return models.Answer{
		QuestionID: req.QuestionID,
		IsCorrect:  req.IsCorrect,
	}
}
