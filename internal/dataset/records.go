package dataset

// Province is a first-level administrative unit (changwat).
type Province struct {
	ID          int    `json:"province_id"`
	Code        string `json:"code"`
	NameThai    string `json:"name_thai"`
	NameEnglish string `json:"name_english"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// District is a second-level unit (amphoe) belonging to one province.
type District struct {
	ID          int    `json:"district_id"`
	ProvinceID  int    `json:"province_id"`
	Code        string `json:"code"`
	NameThai    string `json:"name_thai"`
	NameEnglish string `json:"name_english"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// SubDistrict is a third-level unit (tambon) belonging to one district.
type SubDistrict struct {
	ID          int    `json:"sub_district_id"`
	DistrictID  int    `json:"district_id"`
	Code        string `json:"code"`
	NameThai    string `json:"name_thai"`
	NameEnglish string `json:"name_english"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Statistics holds the record count of each collection.
type Statistics struct {
	ProvinceCount    int `json:"province_count"`
	DistrictCount    int `json:"district_count"`
	SubDistrictCount int `json:"sub_district_count"`
}

// Hierarchy joins a province to its districts and the number of
// sub-districts under those districts.
type Hierarchy struct {
	Province         Province   `json:"province"`
	Districts        []District `json:"districts"`
	SubDistrictCount int        `json:"sub_district_count"`
}

// ProvinceSummary is a province with the number of districts and
// sub-districts beneath it.
type ProvinceSummary struct {
	Province         Province `json:"province"`
	DistrictCount    int      `json:"district_count"`
	SubDistrictCount int      `json:"sub_district_count"`
}

// Collection names one of the three record sets.
type Collection string

const (
	CollectionProvinces    Collection = "provinces"
	CollectionDistricts    Collection = "districts"
	CollectionSubDistricts Collection = "sub_districts"
)

// DefaultFeaturedCodes are Bangkok, Chiang Mai, Phuket and Nakhon Ratchasima.
var DefaultFeaturedCodes = []string{"10", "50", "80", "30"}
