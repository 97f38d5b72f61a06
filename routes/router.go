// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tom-sartori/ChemistryDeathRace-api/controllers"
	"github.com/tom-sartori/ChemistryDeathRace-api/middlewares"
	"github.com/tom-sartori/ChemistryDeathRace-api/models"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 账号模块路由 ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}
		usersAdmin := apiV1.Group("/users")
		usersAdmin.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			usersAdmin.GET("", controllers.GetUserList)
			usersAdmin.PUT("/:id/role", controllers.UpdateUserRole)
		}

		// --- 题库模块路由 ---
		questionRoutes := apiV1.Group("/questions")
		{
			// 公开接口：游戏客户端直接读题
			questionRoutes.GET("", controllers.GetQuestionList)
			questionRoutes.GET("/id/:id", controllers.GetQuestionDetail)
			questionRoutes.GET("/categories", controllers.GetCategories)
			questionRoutes.GET("/categories/difficulty/:difficulty", controllers.GetCategoriesByDifficulty)
			questionRoutes.GET("/difficulties", controllers.GetDifficulties)
			questionRoutes.GET("/difficulties/available", controllers.GetAvailableDifficulties)
			questionRoutes.GET("/difficulty/:difficulty", controllers.GetQuestionsByDifficulty)
			questionRoutes.GET("/difficulty/:difficulty/category/:category", controllers.GetQuestionsByCategory)

			// 编辑接口
			questionRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleContributor), controllers.CreateQuestion)
			questionRoutes.PUT("/id/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleContributor), controllers.UpdateQuestion)
			questionRoutes.DELETE("/id/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleContributor), controllers.DeleteQuestion)

			// 管理员接口：批量重命名分类/难度
			questionRoutes.PUT("/difficulty/:difficulty/category/:category", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.RenameCategory)
			questionRoutes.PUT("/difficulty/:difficulty", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.RenameDifficulty)
		}

		// --- 对局模块路由，开局/作答/结束对游戏客户端公开 ---
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.POST("", controllers.OpenGame)
			gameRoutes.PUT("/answer/:id", controllers.AddAnswer)
			gameRoutes.PUT("/close/:id", controllers.CloseGame)

			gameRoutes.GET("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleContributor), controllers.GetGameList)
			gameRoutes.GET("/played", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleContributor), controllers.CountGamesPlayed)
			gameRoutes.GET("/id/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleContributor), controllers.GetGameDetail)
		}

		// --- 统计模块路由 ---
		statsRoutes := apiV1.Group("/stats")
		statsRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleContributor))
		{
			statsRoutes.GET("/percentage/question", controllers.GetPercentageByQuestion)
			statsRoutes.GET("/percentage", controllers.GetGlobalPercentage)
			statsRoutes.GET("/average/time", controllers.GetAverageTime)
			statsRoutes.GET("/average/dicesize", controllers.GetAverageDiceSize)
			statsRoutes.GET("/average/players", controllers.GetAveragePlayers)
			statsRoutes.GET("/most/played/difficulty", controllers.GetMostPlayedDifficulty)
		}
	}

	return r
}
