package db_models

type SubDistrict struct {
	BaseModel
	ID              int    `gorm:"column:sub_district_id;primaryKey;autoIncrement:false"`
	DistrictID      int    `gorm:"index;not null"`
	Code            string `gorm:"size:8;index;not null"`
	NameThai        string `gorm:"size:128;not null"`
	NameEnglish     string `gorm:"size:128;not null"`
	SourceCreatedAt string `gorm:"size:64"`
	SourceUpdatedAt string `gorm:"size:64"`
}

func (SubDistrict) TableName() string {
	return "sub_districts"
}
