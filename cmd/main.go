// Package main is the entry point for the fuel-service application.
//
// @title           Fuel Service API
// @version         1.0.0
// @description     Recommends a fuel issue range for a truck trip and checks planned amounts against it.
//
//	The recommendation is derived from the truck class efficiency, the load status and a safety buffer.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/fuel-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the calculate endpoint. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin access token, as "Bearer <token>".
//
// @tag.name        Fuel
// @tag.description Fuel recommendation operations
//
// @tag.name        TruckClasses
// @tag.description Truck class lookup and management
//
// @tag.name        Auth
// @tag.description Admin authentication
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/fuel-service/docs" // swagger docs
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
