package loaders

import (
	"context"

	"github.com/google/uuid"
	"thaigeo/internal/dataset"
	"thaigeo/internal/models/db_models"
	"thaigeo/internal/repositories"
)

// RepositoryLoader reads a dataset previously imported into Postgres.
type RepositoryLoader struct {
	provinces    repositories.ProvinceRepository
	districts    repositories.DistrictRepository
	subDistricts repositories.SubDistrictRepository
}

func NewRepositoryLoader(
	provinces repositories.ProvinceRepository,
	districts repositories.DistrictRepository,
	subDistricts repositories.SubDistrictRepository) *RepositoryLoader {

	return &RepositoryLoader{provinces: provinces, districts: districts, subDistricts: subDistricts}
}

func (l *RepositoryLoader) LoadProvinces(ctx context.Context) ([]dataset.Province, error) {
	rows, err := l.provinces.ListAll(ctx)
	if err != nil {
		return nil, dataset.SourceUnavailable(dataset.CollectionProvinces, err)
	}
	return mapRows(rows, ProvinceRecord), nil
}

func (l *RepositoryLoader) LoadDistricts(ctx context.Context) ([]dataset.District, error) {
	rows, err := l.districts.ListAll(ctx)
	if err != nil {
		return nil, dataset.SourceUnavailable(dataset.CollectionDistricts, err)
	}
	return mapRows(rows, DistrictRecord), nil
}

func (l *RepositoryLoader) LoadSubDistricts(ctx context.Context) ([]dataset.SubDistrict, error) {
	rows, err := l.subDistricts.ListAll(ctx)
	if err != nil {
		return nil, dataset.SourceUnavailable(dataset.CollectionSubDistricts, err)
	}
	return mapRows(rows, SubDistrictRecord), nil
}

var _ dataset.RecordLoader = (*RepositoryLoader)(nil)

func ProvinceRecord(m db_models.Province) dataset.Province {
	return dataset.Province{
		ID:          m.ID,
		Code:        m.Code,
		NameThai:    m.NameThai,
		NameEnglish: m.NameEnglish,
		CreatedAt:   m.SourceCreatedAt,
		UpdatedAt:   m.SourceUpdatedAt,
	}
}

func DistrictRecord(m db_models.District) dataset.District {
	return dataset.District{
		ID:          m.ID,
		ProvinceID:  m.ProvinceID,
		Code:        m.Code,
		NameThai:    m.NameThai,
		NameEnglish: m.NameEnglish,
		CreatedAt:   m.SourceCreatedAt,
		UpdatedAt:   m.SourceUpdatedAt,
	}
}

func SubDistrictRecord(m db_models.SubDistrict) dataset.SubDistrict {
	return dataset.SubDistrict{
		ID:          m.ID,
		DistrictID:  m.DistrictID,
		Code:        m.Code,
		NameThai:    m.NameThai,
		NameEnglish: m.NameEnglish,
		CreatedAt:   m.SourceCreatedAt,
		UpdatedAt:   m.SourceUpdatedAt,
	}
}

func ProvinceModel(r dataset.Province, importID uuid.UUID) db_models.Province {
	return db_models.Province{
		BaseModel:       db_models.BaseModel{ImportID: importID},
		ID:              r.ID,
		Code:            r.Code,
		NameThai:        r.NameThai,
		NameEnglish:     r.NameEnglish,
		SourceCreatedAt: r.CreatedAt,
		SourceUpdatedAt: r.UpdatedAt,
	}
}

func DistrictModel(r dataset.District, importID uuid.UUID) db_models.District {
	return db_models.District{
		BaseModel:       db_models.BaseModel{ImportID: importID},
		ID:              r.ID,
		ProvinceID:      r.ProvinceID,
		Code:            r.Code,
		NameThai:        r.NameThai,
		NameEnglish:     r.NameEnglish,
		SourceCreatedAt: r.CreatedAt,
		SourceUpdatedAt: r.UpdatedAt,
	}
}

func SubDistrictModel(r dataset.SubDistrict, importID uuid.UUID) db_models.SubDistrict {
	return db_models.SubDistrict{
		BaseModel:       db_models.BaseModel{ImportID: importID},
		ID:              r.ID,
		DistrictID:      r.DistrictID,
		Code:            r.Code,
		NameThai:        r.NameThai,
		NameEnglish:     r.NameEnglish,
		SourceCreatedAt: r.CreatedAt,
		SourceUpdatedAt: r.UpdatedAt,
	}
}
