package handlers

import (
	"errors"
	"log"
	"net/http"
	request "seguros_xpto/internal/adapter/http/dto/request"
	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/internal/usecase/interfaces"
	"seguros_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests of the proposal-service.

type ProposalHandler struct {
	usecase   usecase.IProposalUseCase
	publisher interfaces.IEventPublisher
}

// NewProposalHandler accepts a nil publisher (audit disabled).
func NewProposalHandler(uc usecase.IProposalUseCase, publisher interfaces.IEventPublisher) *ProposalHandler {
	return &ProposalHandler{usecase: uc, publisher: publisher}
}

// CreateProposal godoc
// @Summary      Create a proposal
// @Description  The proposal is created with status UnderReview.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        request body request.ProposalCreateRequest true "proposal"
// @Success      201 {object} response.ProposalResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ClientName, payload.ClientDocument, payload.InsuredValue)
	if err != nil {
		log.Printf("[proposal][handler] create failed err=%v", err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromProposal(created)
	publishAudit(c.Request.Context(), h.publisher, entities.AuditEventProposalCreated, created.ID, res)
	c.JSON(http.StatusCreated, res)
}

// ListProposals godoc
// @Summary      List proposals
// @Tags         proposals
// @Produce      json
// @Success      200 {array} response.ProposalResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[proposal][handler] list failed err=%v", err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// GetProposal godoc
// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        id path string true "proposal id"
// @Success      200 {object} response.ProposalResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// PatchProposalStatus godoc
// @Summary      Change the status of a proposal
// @Description  Any status may replace any other one. Accepted values: UnderReview, Approved, Rejected.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id path string true "proposal id"
// @Param        request body request.ProposalStatusRequest true "new status"
// @Success      200 {object} response.ProposalResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /proposals/{id}/status [patch]
func (h *ProposalHandler) PatchProposalStatus(c *gin.Context) {
	var payload request.ProposalStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromProposal(updated)
	publishAudit(c.Request.Context(), h.publisher, entities.AuditEventProposalStatusChanged, updated.ID, res)
	c.JSON(http.StatusOK, res)
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidProposalStatus), errors.Is(err, request.ErrMissingProposalStatus):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_STATUS", "Status must be one of UnderReview, Approved, Rejected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
