package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/retail-hub/accounts/internal/server"
	"github.com/retail-hub/accounts/internal/server/config"
)

// @title           Retail Hub Accounts API
// @version         1.0
// @description     Account management: registration, login, bearer tokens, and profiles.

// @BasePath  /v1/accounts

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by POST /login

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
