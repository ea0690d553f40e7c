package response_models

type ProvinceResponse struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	NameThai    string `json:"name_th"`
	NameEnglish string `json:"name_en"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type DistrictResponse struct {
	ID          int    `json:"id"`
	ProvinceID  int    `json:"province_id"`
	Code        string `json:"code"`
	NameThai    string `json:"name_th"`
	NameEnglish string `json:"name_en"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type SubDistrictResponse struct {
	ID          int    `json:"id"`
	DistrictID  int    `json:"district_id"`
	Code        string `json:"code"`
	NameThai    string `json:"name_th"`
	NameEnglish string `json:"name_en"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ProvinceSummaryResponse backs the province cards: a province plus its counts.
type ProvinceSummaryResponse struct {
	ProvinceResponse
	DistrictCount    int `json:"district_count"`
	SubDistrictCount int `json:"sub_district_count"`
}
