package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-class-api/internal/models"
	"github.com/noah-isme/sma-class-api/pkg/response"
)

type refDataService interface {
	Days(ctx context.Context) ([]models.Day, error)
	Periods(ctx context.Context) ([]models.Period, error)
}

// RefDataHandler exposes the fixed day and period reference sets.
type RefDataHandler struct {
	service refDataService
}

// NewRefDataHandler constructs RefDataHandler.
func NewRefDataHandler(service refDataService) *RefDataHandler {
	return &RefDataHandler{service: service}
}

// Days godoc
// @Summary List teaching days
// @Tags refdata
// @Produce json
// @Success 200 {array} models.Day
// @Router /days [get]
func (h *RefDataHandler) Days(c *gin.Context) {
	days, err := h.service.Days(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days)
}

// Periods godoc
// @Summary List teaching periods
// @Tags refdata
// @Produce json
// @Success 200 {array} models.Period
// @Router /periods [get]
func (h *RefDataHandler) Periods(c *gin.Context) {
	periods, err := h.service.Periods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, periods)
}
