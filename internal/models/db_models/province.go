package db_models

type Province struct {
	BaseModel
	ID              int    `gorm:"column:province_id;primaryKey;autoIncrement:false"`
	Code            string `gorm:"size:8;uniqueIndex;not null"`
	NameThai        string `gorm:"size:128;not null"`
	NameEnglish     string `gorm:"size:128;not null;index"`
	SourceCreatedAt string `gorm:"size:64"`
	SourceUpdatedAt string `gorm:"size:64"`

	Districts []*District `gorm:"foreignKey:ProvinceID"` // Explicit foreign key
}

func (Province) TableName() string {
	return "provinces"
}
