package repositories

import (
	"context"
	"gorm.io/gorm"
	"thaigeo/internal/models/db_models"
)

const insertBatchSize = 500

type ProvinceRepository interface {
	InsertTx(tx *gorm.DB, provinces []db_models.Province, ctx context.Context) error
	ListAll(ctx context.Context) ([]db_models.Province, error)
	Count(ctx context.Context) (int64, error)
}

type provinceRepository struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) ProvinceRepository {
	return &provinceRepository{db: db}
}

func (p *provinceRepository) InsertTx(tx *gorm.DB, provinces []db_models.Province, ctx context.Context) error {
	if len(provinces) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(&provinces, insertBatchSize).Error
}

func (p *provinceRepository) ListAll(ctx context.Context) ([]db_models.Province, error) {
	var provinces []db_models.Province
	err := p.db.WithContext(ctx).Order("province_id").Find(&provinces).Error
	if err != nil {
		return nil, err
	}
	return provinces, nil
}

func (p *provinceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&db_models.Province{}).Count(&n).Error
	return n, err
}
