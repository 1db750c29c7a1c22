package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "damage_triage/internal/adapter/http/dto/request"
	response "damage_triage/internal/adapter/http/dto/response"
	"damage_triage/internal/adapter/http/middleware"
	"damage_triage/internal/usecase"
	"damage_triage/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCasePayload   = pkg.NewDomainErrorSimple("INVALID_CASE_INPUT", "Invalid case payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_CASE_STATUS", "case_status is required", http.StatusBadRequest)
)

// CaseHandler serves case submission and reviewer endpoints.
type CaseHandler struct {
	processing usecase.ICaseProcessingUseCase
	cases      usecase.ICaseUseCase
}

func NewCaseHandler(processing usecase.ICaseProcessingUseCase, cases usecase.ICaseUseCase) *CaseHandler {
	return &CaseHandler{processing: processing, cases: cases}
}

// CreateCase godoc
// @Summary      Submit a damage case
// @Description  Describes the photos, finds similar cases, estimates the repair cost and stores the case unless saveToDb is false.
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        case  body      request.CaseRequest  true  "Case submission"
// @Success      200   {object}  response.CaseResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /cases [post]
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var payload request.CaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[case][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	processed, err := h.processing.ProcessCase(c.Request.Context(), payload.ToCase())
	if err != nil {
		appErr := mapCaseError(err)
		log.Printf("[case][handler] process failed request_id=%s status=%d err=%v", middleware.GetRequestID(c), appErr.HTTPStatus, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCase(processed))
}

// ListCases godoc
// @Summary  List cases, newest first
// @Tags     cases
// @Produce  json
// @Success  200  {array}   response.CaseResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /cases [get]
func (h *CaseHandler) ListCases(c *gin.Context) {
	cases, err := h.cases.List(c.Request.Context())
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCases(cases))
}

// GetCase godoc
// @Summary  Get a case
// @Tags     cases
// @Produce  json
// @Param    id   path      string  true  "Case ID"
// @Success  200  {object}  response.CaseResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /cases/{id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	found, err := h.cases.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCase(found))
}

// UpdateCaseStatus godoc
// @Summary  Approve or decline a case
// @Tags     cases
// @Accept   json
// @Param    id      path  string                     true  "Case ID"
// @Param    status  body  request.CaseStatusRequest  true  "Decision"
// @Success  204
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /cases/{id} [patch]
func (h *CaseHandler) UpdateCaseStatus(c *gin.Context) {
	var payload request.CaseStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.CaseStatus) == "" {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	if _, err := h.cases.UpdateStatus(c.Request.Context(), id, payload.ResolveStatus()); err != nil {
		appErr := mapCaseError(err)
		log.Printf("[case][handler] status update failed case_id=%s status=%d err=%v", id, appErr.HTTPStatus, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDescription), errors.Is(err, usecase.ErrMissingImages), errors.Is(err, usecase.ErrInvalidCaseImage):
		return pkg.NewDomainError("INVALID_CASE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidCaseStatus):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Case status can no longer change", http.StatusConflict)
	case errors.Is(err, usecase.ErrDescriptionFailed), errors.Is(err, usecase.ErrEmbeddingFailed),
		errors.Is(err, usecase.ErrEstimationFailed), errors.Is(err, usecase.ErrUnparseableEstimation),
		errors.Is(err, usecase.ErrCaseStoreFailed):
		return pkg.NewDomainError("CASE_PROCESSING_FAILED", err.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
