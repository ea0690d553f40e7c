package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"thaigeo/internal/services"
	"thaigeo/pkg/utils"
)

type StatisticsController struct {
	geoService services.GeoServiceInterface
	logger     *zap.Logger
}

func NewStatisticsController(geoService services.GeoServiceInterface, logger *zap.Logger) *StatisticsController {
	return &StatisticsController{
		geoService: geoService,
		logger:     logger,
	}
}

// GetStatistics godoc
// @Summary Record counts for the three collections
// @Tags Statistics
// @Produce json
// @Success 200 {object} response_models.StatisticsResponse
// @Failure 503 {object} utils.APIResponse
// @Router /statistics [get]
func (s *StatisticsController) GetStatistics(c *gin.Context) {
	stats, err := s.geoService.GetStatistics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, s.logger)
		return
	}

	utils.RespondSuccess(c, stats, "Statistics fetched successfully")
}

// Health answers without touching the dataset.
func (s *StatisticsController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
