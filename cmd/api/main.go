package main

import (
	"github.com/ceccimesquita/papillon/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	routes.Run()
}
