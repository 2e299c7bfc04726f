package main

import (
	_ "laboratorio_xpto/docs"
	"laboratorio_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Laboratorio XPTO Front-Office API
// @version         1.0
// @description     Budget and appointment editing sessions: exams, plan pricing, discounts, payments, orders and slot picking.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
