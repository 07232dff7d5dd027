package main

import (
	"os"

	"github.com/MehulKanani556/Dance-Fitme/config"
	"github.com/MehulKanani556/Dance-Fitme/routes"
	"github.com/MehulKanani556/Dance-Fitme/services"
	"github.com/MehulKanani556/Dance-Fitme/utils"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	r := routes.SetupRouter(db, services.NewRealClock())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
