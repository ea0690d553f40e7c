package db_models

type District struct {
	BaseModel
	ID              int    `gorm:"column:district_id;primaryKey;autoIncrement:false"`
	ProvinceID      int    `gorm:"index;not null"`
	Code            string `gorm:"size:8;index;not null"`
	NameThai        string `gorm:"size:128;not null"`
	NameEnglish     string `gorm:"size:128;not null"`
	SourceCreatedAt string `gorm:"size:64"`
	SourceUpdatedAt string `gorm:"size:64"`

	SubDistricts []*SubDistrict `gorm:"foreignKey:DistrictID"`
}

func (District) TableName() string {
	return "districts"
}
