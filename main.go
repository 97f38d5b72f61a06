// file: main.go
package main

import (
	"log"

	"github.com/tom-sartori/ChemistryDeathRace-api/controllers"
	"github.com/tom-sartori/ChemistryDeathRace-api/database"
	"github.com/tom-sartori/ChemistryDeathRace-api/routes"
	"github.com/tom-sartori/ChemistryDeathRace-api/services"
)

func main() {
	database.Connect()
	database.MigrateTables()
	database.InitRedis()

	// 显式装配：存储 -> 服务 -> 控制器
	questionStore := database.NewQuestionStore(database.DB)
	gameStore := database.NewGameStore(database.DB)
	controllers.Init(
		services.NewQuestionService(questionStore),
		services.NewGameService(gameStore),
		services.NewStatsService(gameStore, questionStore),
	)

	r := routes.SetupRouter()

	log.Println("Starting server on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
