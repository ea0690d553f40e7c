package response_models

type HierarchyResponse struct {
	Province         ProvinceResponse   `json:"province"`
	Districts        []DistrictResponse `json:"districts"`
	DistrictCount    int                `json:"district_count"`
	SubDistrictCount int                `json:"sub_district_count"`
}

type StatisticsResponse struct {
	Provinces    int `json:"provinces"`
	Districts    int `json:"districts"`
	SubDistricts int `json:"sub_districts"`
}
