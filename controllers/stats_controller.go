// file: controllers/stats_controller.go
package controllers

import (
	"encoding/json"
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tom-sartori/ChemistryDeathRace-api/database"
	"github.com/tom-sartori/ChemistryDeathRace-api/dto"
	"github.com/tom-sartori/ChemistryDeathRace-api/mappers"
	"github.com/tom-sartori/ChemistryDeathRace-api/utils"
)

// 统计结果缓存 60 秒，对局写入时整体失效（见 flushStatsCache）
const statsCacheTTL = 60 * time.Second

// ratioOrNil 将 NaN（无数据）转换为 null，encoding/json 无法编码 NaN
func ratioOrNil(value float64) *float64 {
	if math.IsNaN(value) {
		return nil
	}
	return &value
}

// GetPercentageByQuestion 查询每道题的答题正确率
func GetPercentageByQuestion(c *gin.Context) {
	const cacheKey = "stats:percentage:question"

	// 1. 尝试从 Redis 获取缓存
	if val, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
		var cached []dto.QuestionStatResp
		if json.Unmarshal([]byte(val), &cached) == nil {
			utils.Success(c, "success (from cache)", cached)
			return
		}
	}

	stats, err := statsService.PercentageByQuestion()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := mappers.MapQuestionStatsToResp(stats)

	// 2. 缓存未命中，将计算结果写回 Redis
	if jsonData, err := json.Marshal(resp); err == nil {
		database.RDB.Set(database.Ctx, cacheKey, jsonData, statsCacheTTL)
	}

	utils.Success(c, "success", resp)
}

// GetGlobalPercentage 查询全局答题正确率，没有任何作答时返回 null
func GetGlobalPercentage(c *gin.Context) {
	value, err := statsService.GlobalPercentage()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", gin.H{"percentage": ratioOrNil(value)})
}

// GetAverageTime 查询已结束对局的平均时长（毫秒）
func GetAverageTime(c *gin.Context) {
	value, err := statsService.AverageDuration()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", gin.H{"average_time": value})
}

// GetAverageDiceSize 查询平均骰子面数
func GetAverageDiceSize(c *gin.Context) {
	value, err := statsService.AverageDiceSize()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", gin.H{"average_dice_size": value})
}

// GetAveragePlayers 查询平均玩家数
func GetAveragePlayers(c *gin.Context) {
	value, err := statsService.AveragePlayers()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", gin.H{"average_players": value})
}

// GetMostPlayedDifficulty 查询被玩得最多的难度
func GetMostPlayedDifficulty(c *gin.Context) {
	value, err := statsService.MostPlayedDifficulty()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", gin.H{"most_played_difficulty": value})
}
