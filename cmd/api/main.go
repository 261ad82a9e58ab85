package main

import (
	_ "quotedesk/docs"
	"quotedesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Training Quote Service API
// @version         1.0
// @description     Request intake, pricing calculation and quote lifecycle for a training-services business, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
