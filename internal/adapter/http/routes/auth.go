package routes

import (
	"github.com/ceccimesquita/papillon/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST("/register", authHandler.Register)
	rg.POST("/login", authHandler.Login)
}
