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

const (
	msgProposalNotFound    = "Proposal not found."
	msgProposalNotApproved = "Only proposals with status 'Approved' can be hired."
)

// HiringHandler handles HTTP requests of the hiring-service.

type HiringHandler struct {
	usecase   usecase.IHiringUseCase
	publisher interfaces.IEventPublisher
}

// NewHiringHandler accepts a nil publisher (audit disabled).
func NewHiringHandler(uc usecase.IHiringUseCase, publisher interfaces.IEventPublisher) *HiringHandler {
	return &HiringHandler{usecase: uc, publisher: publisher}
}

// CreateHiring godoc
// @Summary      Hire a proposal
// @Description  Asks the proposal-service for the proposal and records the hiring only when its status is Approved.
// @Tags         hiring
// @Accept       json
// @Produce      json
// @Param        request body request.HiringCreateRequest true "proposal to hire"
// @Success      200 {object} response.HiringResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /hiring [post]
func (h *HiringHandler) CreateHiring(c *gin.Context) {
	var payload request.HiringCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_HIRING_INPUT", "Invalid hiring payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	proposalID := payload.ResolveProposalID()
	log.Printf("[hiring][handler] create start proposal_id=%s", proposalID)

	created, err := h.usecase.Hire(c.Request.Context(), proposalID)
	if err != nil {
		log.Printf("[hiring][handler] create failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapHiringError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hiring][handler] create success proposal_id=%s hiring_id=%s", proposalID, created.ID)

	res := response.FromHiring(created)
	publishAudit(c.Request.Context(), h.publisher, entities.AuditEventHiringCreated, created.ID, res)
	c.JSON(http.StatusOK, res)
}

// ListHirings godoc
// @Summary      List hirings
// @Tags         hiring
// @Produce      json
// @Success      200 {array} response.HiringResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /hiring [get]
func (h *HiringHandler) ListHirings(c *gin.Context) {
	hirings, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapHiringError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHirings(hirings))
}

// GetHiring godoc
// @Summary      Get a hiring
// @Tags         hiring
// @Produce      json
// @Param        id path string true "hiring id"
// @Success      200 {object} response.HiringResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /hiring/{id} [get]
func (h *HiringHandler) GetHiring(c *gin.Context) {
	hiring, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHiringError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHiring(hiring))
}

func mapHiringError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidHiringID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", msgProposalNotFound, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotApproved):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_APPROVED", msgProposalNotApproved, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHiringNotFound):
		return pkg.NewDomainErrorSimple("HIRING_NOT_FOUND", "Hiring not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalLookupFailed):
		return pkg.NewDomainError("PROPOSAL_SERVICE_UNAVAILABLE", "Proposal service unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Hiring could not be stored", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
