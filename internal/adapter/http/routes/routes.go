package routes

import (
	"log"
	"net/http"

	"seguros_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	SwaggerProposal = "proposal"
	SwaggerHiring   = "hiring"
)

// NewProposalRouter assembles the proposal-service HTTP surface.
func NewProposalRouter(proposalHandler *handlers.ProposalHandler) *gin.Engine {
	router := newRouter(SwaggerProposal)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, proposalHandler)
	return router
}

// NewHiringRouter assembles the hiring-service HTTP surface.
func NewHiringRouter(hiringHandler *handlers.HiringHandler) *gin.Engine {
	router := newRouter(SwaggerHiring)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addHiringRoutes(v1, hiringHandler)
	return router
}

func newRouter(swaggerInstance string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(swaggerInstance)))
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
