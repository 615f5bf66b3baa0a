package routes

import (
	"seguros_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHiring = "/hiring"
)

func addHiringRoutes(rg *gin.RouterGroup, hiringHandler *handlers.HiringHandler) {
	hiring := rg.Group(PathHiring)
	{
		hiring.POST("", hiringHandler.CreateHiring)
		hiring.GET("", hiringHandler.ListHirings)
		hiring.GET("/:id", hiringHandler.GetHiring)
	}
}
