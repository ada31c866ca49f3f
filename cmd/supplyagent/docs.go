package main

// @title Supply Agent API
// @version 1.0
// @description Supply request feasibility simulation service with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/supply-agent
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/supply-agent/blob/main/LICENSE

// @host localhost:8084
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Catalog
// @tag.description Product catalog endpoints

// @tag.name Requests
// @tag.description Supply request simulation endpoints

// @tag.name Scenarios
// @tag.description Simulation outcome endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
