package main

// @title GRN Tracker API
// @version 1.0
// @description Goods Received Note tracking with vendor, branch and asset master data.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
