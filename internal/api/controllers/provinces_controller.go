package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"thaigeo/internal/services"
	"thaigeo/pkg/utils"
)

const defaultPageSize = 20

type ProvincesController struct {
	geoService services.GeoServiceInterface
	logger     *zap.Logger
}

func NewProvincesController(geoService services.GeoServiceInterface, logger *zap.Logger) *ProvincesController {
	return &ProvincesController{
		geoService: geoService,
		logger:     logger,
	}
}

// GetAllProvinces godoc
// @Summary Get all provinces
// @Description Fetch a paginated list of provinces in dataset order
// @Tags Provinces
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} response_models.Page[response_models.ProvinceResponse]
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /provinces [get]
func (p *ProvincesController) GetAllProvinces(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c.Query("page"), c.Query("pageSize"), defaultPageSize)
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	provinces, err := p.geoService.ListProvinces(page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	utils.RespondSuccess(c, provinces, "Provinces fetched successfully")
}

// GetProvinceByCode godoc
// @Summary Get a province by its code
// @Tags Provinces
// @Produce json
// @Param code path string true "Province code"
// @Success 200 {object} response_models.ProvinceResponse
// @Failure 404 {object} utils.APIResponse
// @Router /provinces/code/{code} [get]
func (p *ProvincesController) GetProvinceByCode(c *gin.Context) {
	province, err := p.geoService.GetProvinceByCode(c.Param("code"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	utils.RespondSuccess(c, province, "Province fetched successfully")
}

// SearchProvinces godoc
// @Summary Search provinces by name
// @Description Case-insensitive substring match. lang selects thai, english or any (default).
// @Tags Provinces
// @Produce json
// @Param q query string false "Search text"
// @Param lang query string false "thai | english | any"
// @Success 200 {array} response_models.ProvinceResponse
// @Router /provinces/search [get]
func (p *ProvincesController) SearchProvinces(c *gin.Context) {
	provinces, err := p.geoService.SearchProvinces(c.Query("q"), c.Query("lang"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	utils.RespondSuccess(c, provinces, "Provinces fetched successfully")
}

// GetProvinceSummaries godoc
// @Summary List every province with its district and sub-district counts
// @Tags Provinces
// @Produce json
// @Success 200 {array} response_models.ProvinceSummaryResponse
// @Router /provinces/summaries [get]
func (p *ProvincesController) GetProvinceSummaries(c *gin.Context) {
	summaries, err := p.geoService.GetProvinceSummaries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	utils.RespondSuccess(c, summaries, "Province summaries fetched successfully")
}

// GetFeaturedProvinces godoc
// @Summary Summaries for a fixed set of province codes
// @Tags Provinces
// @Produce json
// @Param codes query string false "Comma separated province codes"
// @Success 200 {array} response_models.ProvinceSummaryResponse
// @Router /provinces/featured [get]
func (p *ProvincesController) GetFeaturedProvinces(c *gin.Context) {
	var codes []string
	for _, code := range strings.Split(c.Query("codes"), ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}

	featured, err := p.geoService.GetFeaturedProvinces(codes, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	utils.RespondSuccess(c, featured, "Featured provinces fetched successfully")
}

// GetDistrictsByProvince godoc
// @Summary Districts of a province
// @Tags Provinces
// @Produce json
// @Param id path int true "Province id"
// @Success 200 {array} response_models.DistrictResponse
// @Failure 400 {object} utils.APIResponse
// @Router /provinces/{id}/districts [get]
func (p *ProvincesController) GetDistrictsByProvince(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidID, p.logger)
		return
	}

	districts, err := p.geoService.GetDistrictsByProvinceId(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	utils.RespondSuccess(c, districts, "Districts fetched successfully")
}

// GetProvinceHierarchy godoc
// @Summary A province with its districts and sub-district count
// @Tags Provinces
// @Produce json
// @Param id path int true "Province id"
// @Success 200 {object} response_models.HierarchyResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /provinces/{id}/hierarchy [get]
func (p *ProvincesController) GetProvinceHierarchy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidID, p.logger)
		return
	}

	hierarchy, err := p.geoService.GetProvinceHierarchy(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, p.logger)
		return
	}

	utils.RespondSuccess(c, hierarchy, "Province hierarchy fetched successfully")
}
