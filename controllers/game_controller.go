// file: controllers/game_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tom-sartori/ChemistryDeathRace-api/dto"
	"github.com/tom-sartori/ChemistryDeathRace-api/mappers"
	"github.com/tom-sartori/ChemistryDeathRace-api/utils"
)

// OpenGame 开启一局新游戏
func OpenGame(c *gin.Context) {
	var req dto.OpenGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	game := mappers.MapOpenGameReqToModel(req)
	if err := gameService.Open(&game); err != nil {
		handleServiceError(c, err)
		return
	}

	flushStatsCache()
	utils.Success(c, "Game opened successfully", game)
}

// AddAnswer 向进行中的对局追加作答记录
func AddAnswer(c *gin.Context) {
	var req dto.AnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	game, err := gameService.AddAnswer(c.Param("id"), mappers.MapAnswerReqToModel(req))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	flushStatsCache()
	utils.Success(c, "Answer added successfully", game)
}

// CloseGame 结束对局
func CloseGame(c *gin.Context) {
	game, err := gameService.Close(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	flushStatsCache()
	utils.Success(c, "Game closed successfully", game)
}

// GetGameList 查询全部对局
func GetGameList(c *gin.Context) {
	games, err := gameService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", games)
}

// GetGameDetail 查询单局详情
func GetGameDetail(c *gin.Context) {
	game, err := gameService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", game)
}

// CountGamesPlayed 查询已记录的对局总数
func CountGamesPlayed(c *gin.Context) {
	count, err := gameService.Count()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", gin.H{"played": count})
}
