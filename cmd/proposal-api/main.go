package main

import (
	"log"

	_ "seguros_xpto/docs/proposal"
	"seguros_xpto/internal/adapter/http/routes"
	"seguros_xpto/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Proposal Service API
// @version         1.0
// @description     Insurance proposals: create, list, get and change status.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(".", "8080")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := routes.RunProposalService(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
