package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"thaigeo/internal/services"
	"thaigeo/pkg/utils"
)

type DistrictsController struct {
	geoService services.GeoServiceInterface
	logger     *zap.Logger
}

func NewDistrictsController(geoService services.GeoServiceInterface, logger *zap.Logger) *DistrictsController {
	return &DistrictsController{
		geoService: geoService,
		logger:     logger,
	}
}

// GetAllDistricts godoc
// @Summary Get all districts
// @Tags Districts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} response_models.Page[response_models.DistrictResponse]
// @Router /districts [get]
func (d *DistrictsController) GetAllDistricts(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c.Query("page"), c.Query("pageSize"), defaultPageSize)
	if err != nil {
		utils.HandleServiceError(c, err, d.logger)
		return
	}

	districts, err := d.geoService.ListDistricts(page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, d.logger)
		return
	}

	utils.RespondSuccess(c, districts, "Districts fetched successfully")
}

// GetSubDistrictsByDistrict godoc
// @Summary Sub-districts of a district
// @Tags Districts
// @Produce json
// @Param id path int true "District id"
// @Success 200 {array} response_models.SubDistrictResponse
// @Router /districts/{id}/sub-districts [get]
func (d *DistrictsController) GetSubDistrictsByDistrict(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidID, d.logger)
		return
	}

	subDistricts, err := d.geoService.GetSubDistrictsByDistrictId(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, d.logger)
		return
	}

	utils.RespondSuccess(c, subDistricts, "Sub-districts fetched successfully")
}

// GetAllSubDistricts godoc
// @Summary Get all sub-districts
// @Tags SubDistricts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} response_models.Page[response_models.SubDistrictResponse]
// @Router /sub-districts [get]
func (d *DistrictsController) GetAllSubDistricts(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c.Query("page"), c.Query("pageSize"), defaultPageSize)
	if err != nil {
		utils.HandleServiceError(c, err, d.logger)
		return
	}

	subDistricts, err := d.geoService.ListSubDistricts(page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, d.logger)
		return
	}

	utils.RespondSuccess(c, subDistricts, "Sub-districts fetched successfully")
}
