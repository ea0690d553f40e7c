package controllers

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter,
	provincesController *ProvincesController,
	districtsController *DistrictsController,
	statisticsController *StatisticsController) {

	r.GET("/healthz", statisticsController.Health)
	r.GET("/statistics", statisticsController.GetStatistics)

	provincesGroup := r.Group("/provinces")
	provincesGroup.GET("", provincesController.GetAllProvinces)
	provincesGroup.GET("/search", provincesController.SearchProvinces)
	provincesGroup.GET("/summaries", provincesController.GetProvinceSummaries)
	provincesGroup.GET("/featured", provincesController.GetFeaturedProvinces)
	provincesGroup.GET("/code/:code", provincesController.GetProvinceByCode)
	provincesGroup.GET("/:id/districts", provincesController.GetDistrictsByProvince)
	provincesGroup.GET("/:id/hierarchy", provincesController.GetProvinceHierarchy)

	districtsGroup := r.Group("/districts")
	districtsGroup.GET("", districtsController.GetAllDistricts)
	districtsGroup.GET("/:id/sub-districts", districtsController.GetSubDistrictsByDistrict)

	r.GET("/sub-districts", districtsController.GetAllSubDistricts)
}
