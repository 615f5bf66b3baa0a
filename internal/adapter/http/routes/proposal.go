package routes

import (
	"seguros_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id/status", proposalHandler.PatchProposalStatus)
	}
}
