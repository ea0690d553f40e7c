package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"thaigeo/internal/dataset"
	"thaigeo/internal/infra"
	"thaigeo/internal/loaders"
	"thaigeo/internal/models/db_models"
	"thaigeo/internal/repositories"
	"thaigeo/pkg/utils"
)

type ImportReport struct {
	ImportID     uuid.UUID     `json:"import_id"`
	Replaced     bool          `json:"replaced"`
	Provinces    int           `json:"provinces"`
	Districts    int           `json:"districts"`
	SubDistricts int           `json:"sub_districts"`
	Elapsed      time.Duration `json:"elapsed"`

	// Stored holds the table row counts after commit.
	Stored StoredCounts `json:"stored"`
}

type StoredCounts struct {
	Provinces    int64 `json:"provinces"`
	Districts    int64 `json:"districts"`
	SubDistricts int64 `json:"sub_districts"`
}

type ImportServiceInterface interface {
	Import(ctx context.Context, replace bool) (ImportReport, error)
}

// ImportService copies a file or HTTP backed dataset into PostgreSQL.
type ImportService struct {
	db              *gorm.DB
	source          *dataset.Dataset
	provinceRepo    repositories.ProvinceRepository
	districtRepo    repositories.DistrictRepository
	subDistrictRepo repositories.SubDistrictRepository
	logger          *zap.Logger
}

func NewImportService(
	db *gorm.DB,
	source *dataset.Dataset,
	provinceRepo repositories.ProvinceRepository,
	districtRepo repositories.DistrictRepository,
	subDistrictRepo repositories.SubDistrictRepository,
	logger *zap.Logger,
) ImportServiceInterface {
	return &ImportService{
		db:              db,
		source:          source,
		provinceRepo:    provinceRepo,
		districtRepo:    districtRepo,
		subDistrictRepo: subDistrictRepo,
		logger:          logger,
	}
}

// Import writes all three collections in one transaction. With replace the
// tables are truncated first, otherwise rows are appended and duplicate keys
// fail the whole import.
func (s *ImportService) Import(ctx context.Context, replace bool) (ImportReport, error) {
	start := time.Now()
	report := ImportReport{ImportID: uuid.New(), Replaced: replace}

	if err := s.source.Preload(ctx); err != nil {
		return report, fmt.Errorf("%w: %w", utils.ErrDataUnavailable, err)
	}
	provinces, err := s.source.Provinces(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: %w", utils.ErrDataUnavailable, err)
	}
	districts, err := s.source.Districts(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: %w", utils.ErrDataUnavailable, err)
	}
	subDistricts, err := s.source.SubDistricts(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: %w", utils.ErrDataUnavailable, err)
	}

	if err := infra.AutoMigrate(s.db.WithContext(ctx)); err != nil {
		s.logger.Error("Error migrating dataset tables", zap.Error(err))
		return report, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	tx, err := infra.StartTransaction(s.db.WithContext(ctx), s.logger)
	if err != nil {
		return report, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	err = s.write(ctx, tx, report.ImportID, replace, provinces, districts, subDistricts)
	if releaseErr := infra.ReleaseTransaction(tx, err, s.logger); err == nil {
		err = releaseErr
	}
	if err != nil {
		return report, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	report.Provinces = len(provinces)
	report.Districts = len(districts)
	report.SubDistricts = len(subDistricts)
	if report.Stored, err = s.stored(ctx); err != nil {
		s.logger.Warn("Error counting imported rows", zap.Error(err))
	}
	report.Elapsed = time.Since(start)

	s.logger.Info("dataset imported",
		zap.Stringer("import_id", report.ImportID),
		zap.Bool("replaced", replace),
		zap.Int("provinces", report.Provinces),
		zap.Int("districts", report.Districts),
		zap.Int("sub_districts", report.SubDistricts),
		zap.Int64("stored_provinces", report.Stored.Provinces),
		zap.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

func (s *ImportService) write(
	ctx context.Context,
	tx *gorm.DB,
	importID uuid.UUID,
	replace bool,
	provinces []dataset.Province,
	districts []dataset.District,
	subDistricts []dataset.SubDistrict,
) error {
	if replace {
		err := infra.TruncateTables(tx,
			db_models.SubDistrict{}.TableName(),
			db_models.District{}.TableName(),
			db_models.Province{}.TableName(),
		)
		if err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
	}

	if err := s.provinceRepo.InsertTx(tx, toModels(provinces, importID, loaders.ProvinceModel), ctx); err != nil {
		return fmt.Errorf("insert provinces: %w", err)
	}
	if err := s.districtRepo.InsertTx(tx, toModels(districts, importID, loaders.DistrictModel), ctx); err != nil {
		return fmt.Errorf("insert districts: %w", err)
	}
	if err := s.subDistrictRepo.InsertTx(tx, toModels(subDistricts, importID, loaders.SubDistrictModel), ctx); err != nil {
		return fmt.Errorf("insert sub-districts: %w", err)
	}
	return nil
}

func (s *ImportService) stored(ctx context.Context) (StoredCounts, error) {
	var counts StoredCounts
	var err error
	if counts.Provinces, err = s.provinceRepo.Count(ctx); err != nil {
		return counts, err
	}
	if counts.Districts, err = s.districtRepo.Count(ctx); err != nil {
		return counts, err
	}
	if counts.SubDistricts, err = s.subDistrictRepo.Count(ctx); err != nil {
		return counts, err
	}
	return counts, nil
}

func toModels[R, M any](records []R, importID uuid.UUID, f func(R, uuid.UUID) M) []M {
	out := make([]M, 0, len(records))
	for _, r := range records {
		out = append(out, f(r, importID))
	}
	return out
}
