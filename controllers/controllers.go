// file: controllers/controllers.go
package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tom-sartori/ChemistryDeathRace-api/database"
	"github.com/tom-sartori/ChemistryDeathRace-api/services"
	"github.com/tom-sartori/ChemistryDeathRace-api/utils"
)

var (
	questionService *services.QuestionService
	gameService     *services.GameService
	statsService    *services.StatsService
)

// Init 注入各业务服务，装配在 main 中完成
func Init(questions *services.QuestionService, games *services.GameService, stats *services.StatsService) {
	questionService = questions
	gameService = games
	statsService = stats
}

// handleServiceError 将业务错误统一翻译为响应码
func handleServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.Error(c, 1003, validationErr.Reason)
	case errors.Is(err, services.ErrConflictingRename):
		utils.Error(c, 4005, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Error(c, 4004, err.Error())
	default:
		utils.Error(c, 5000, "数据库错误: "+err.Error())
	}
}

// decodeParam 将路径参数中的下划线还原为空格，分类和难度标签允许带空格
func decodeParam(parameter string) string {
	return strings.ReplaceAll(parameter, "_", " ")
}

// flushStatsCache 对局数据变化后清空统计缓存，下次查询重新计算
func flushStatsCache() {
	keys, err := database.RDB.Keys(database.Ctx, "stats:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
	}
}
