package handlers

import (
	"errors"
	"log"
	"net/http"

	"damage_triage/internal/usecase"
	"damage_triage/pkg"

	"github.com/gin-gonic/gin"
)

// PriceHandler identifies a product from an image and returns live offers.
type PriceHandler struct {
	usecase usecase.IPriceUseCase
}

func NewPriceHandler(uc usecase.IPriceUseCase) *PriceHandler {
	return &PriceHandler{usecase: uc}
}

// GetPrices godoc
// @Summary  Market prices for the product shown in an image
// @Tags     prices
// @Produce  json
// @Param    image_url  query     string  true  "Public image URL"
// @Success  200        {object}  entities.ProductPrices
// @Failure  400        {object}  pkg.HTTPError
// @Failure  500        {object}  pkg.HTTPError
// @Router   /prices [get]
func (h *PriceHandler) GetPrices(c *gin.Context) {
	imageURL := c.Query("image_url")
	if imageURL == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_IMAGE_URL", "Missing image_url parameter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.LookupPrices(c.Request.Context(), imageURL)
	if err != nil {
		appErr := mapPriceError(err)
		log.Printf("[price][handler] lookup failed status=%d err=%v", appErr.HTTPStatus, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func mapPriceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImageURL):
		return pkg.NewDomainError("INVALID_IMAGE_URL", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageDownloadFailed):
		return pkg.NewDomainError("IMAGE_DOWNLOAD_FAILED", "Failed to fetch or process image", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrProductNotIdentified):
		return pkg.NewDomainError("PRODUCT_NOT_IDENTIFIED", "Failed to identify product from image", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPriceLookupFailed):
		return pkg.NewDomainError("PRICE_LOOKUP_FAILED", "Failed to scrape prices", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPriceLookupNotEnabled):
		return pkg.NewDomainError("PRICE_LOOKUP_DISABLED", "Price lookup is not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
