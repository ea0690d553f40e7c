package repositories

import (
	"context"
	"gorm.io/gorm"
	"thaigeo/internal/models/db_models"
)

type SubDistrictRepository interface {
	InsertTx(tx *gorm.DB, subDistricts []db_models.SubDistrict, ctx context.Context) error
	ListAll(ctx context.Context) ([]db_models.SubDistrict, error)
	Count(ctx context.Context) (int64, error)
}

type subDistrictRepository struct {
	db *gorm.DB
}

func NewSubDistrictRepository(db *gorm.DB) SubDistrictRepository {
	return &subDistrictRepository{db: db}
}

func (s *subDistrictRepository) InsertTx(tx *gorm.DB, subDistricts []db_models.SubDistrict, ctx context.Context) error {
	if len(subDistricts) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(&subDistricts, insertBatchSize).Error
}

func (s *subDistrictRepository) ListAll(ctx context.Context) ([]db_models.SubDistrict, error) {
	var subDistricts []db_models.SubDistrict
	err := s.db.WithContext(ctx).Order("sub_district_id").Find(&subDistricts).Error
	if err != nil {
		return nil, err
	}
	return subDistricts, nil
}

func (s *subDistrictRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&db_models.SubDistrict{}).Count(&n).Error
	return n, err
}
