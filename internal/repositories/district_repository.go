package repositories

import (
	"context"
	"gorm.io/gorm"
	"thaigeo/internal/models/db_models"
)

type DistrictRepository interface {
	InsertTx(tx *gorm.DB, districts []db_models.District, ctx context.Context) error
	ListAll(ctx context.Context) ([]db_models.District, error)
	Count(ctx context.Context) (int64, error)
}

type districtRepository struct {
	db *gorm.DB
}

func NewDistrictRepository(db *gorm.DB) DistrictRepository {
	return &districtRepository{db: db}
}

func (d *districtRepository) InsertTx(tx *gorm.DB, districts []db_models.District, ctx context.Context) error {
	if len(districts) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(&districts, insertBatchSize).Error
}

func (d *districtRepository) ListAll(ctx context.Context) ([]db_models.District, error) {
	var districts []db_models.District
	err := d.db.WithContext(ctx).Order("district_id").Find(&districts).Error
	if err != nil {
		return nil, err
	}
	return districts, nil
}

func (d *districtRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&db_models.District{}).Count(&n).Error
	return n, err
}
