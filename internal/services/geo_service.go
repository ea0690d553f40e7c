package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"thaigeo/internal/dataset"
	"thaigeo/internal/models/response_models"
	"thaigeo/pkg/utils"
)

type GeoServiceInterface interface {
	ListProvinces(page int, pageSize int, ctx context.Context) (response_models.Page[response_models.ProvinceResponse], error)
	ListDistricts(page int, pageSize int, ctx context.Context) (response_models.Page[response_models.DistrictResponse], error)
	ListSubDistricts(page int, pageSize int, ctx context.Context) (response_models.Page[response_models.SubDistrictResponse], error)
	GetProvinceByCode(code string, ctx context.Context) (response_models.ProvinceResponse, error)
	SearchProvinces(query string, lang string, ctx context.Context) ([]response_models.ProvinceResponse, error)
	GetDistrictsByProvinceId(provinceID int, ctx context.Context) ([]response_models.DistrictResponse, error)
	GetSubDistrictsByDistrictId(districtID int, ctx context.Context) ([]response_models.SubDistrictResponse, error)
	GetProvinceHierarchy(provinceID int, ctx context.Context) (response_models.HierarchyResponse, error)
	GetStatistics(ctx context.Context) (response_models.StatisticsResponse, error)
	GetProvinceSummaries(ctx context.Context) ([]response_models.ProvinceSummaryResponse, error)
	GetFeaturedProvinces(codes []string, ctx context.Context) ([]response_models.ProvinceSummaryResponse, error)
}

type GeoService struct {
	dataset *dataset.Dataset
	logger  *zap.Logger
}

func NewGeoService(ds *dataset.Dataset, logger *zap.Logger) GeoServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeoService{
		dataset: ds,
		logger:  logger,
	}
}

// unavailable tags a loader failure so controllers answer 503.
func (g *GeoService) unavailable(op string, err error) error {
	g.logger.Warn("dataset read failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %w", utils.ErrDataUnavailable, err)
}

func checkPage(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > utils.MaxPageSize {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func (g *GeoService) ListProvinces(page int, pageSize int, ctx context.Context) (response_models.Page[response_models.ProvinceResponse], error) {
	var out response_models.Page[response_models.ProvinceResponse]
	if err := checkPage(page, pageSize); err != nil {
		return out, err
	}
	provinces, err := g.dataset.Provinces(ctx)
	if err != nil {
		return out, g.unavailable("list_provinces", err)
	}
	return response_models.Page[response_models.ProvinceResponse]{
		Items:    mapAll(utils.Paginate(provinces, page, pageSize), toProvinceResponse),
		Page:     page,
		PageSize: pageSize,
		Total:    len(provinces),
	}, nil
}

func (g *GeoService) ListDistricts(page int, pageSize int, ctx context.Context) (response_models.Page[response_models.DistrictResponse], error) {
	var out response_models.Page[response_models.DistrictResponse]
	if err := checkPage(page, pageSize); err != nil {
		return out, err
	}
	districts, err := g.dataset.Districts(ctx)
	if err != nil {
		return out, g.unavailable("list_districts", err)
	}
	return response_models.Page[response_models.DistrictResponse]{
		Items:    mapAll(utils.Paginate(districts, page, pageSize), toDistrictResponse),
		Page:     page,
		PageSize: pageSize,
		Total:    len(districts),
	}, nil
}

func (g *GeoService) ListSubDistricts(page int, pageSize int, ctx context.Context) (response_models.Page[response_models.SubDistrictResponse], error) {
	var out response_models.Page[response_models.SubDistrictResponse]
	if err := checkPage(page, pageSize); err != nil {
		return out, err
	}
	subDistricts, err := g.dataset.SubDistricts(ctx)
	if err != nil {
		return out, g.unavailable("list_sub_districts", err)
	}
	return response_models.Page[response_models.SubDistrictResponse]{
		Items:    mapAll(utils.Paginate(subDistricts, page, pageSize), toSubDistrictResponse),
		Page:     page,
		PageSize: pageSize,
		Total:    len(subDistricts),
	}, nil
}

func (g *GeoService) GetProvinceByCode(code string, ctx context.Context) (response_models.ProvinceResponse, error) {
	province, ok, err := g.dataset.ProvinceByCode(ctx, code)
	if err != nil {
		return response_models.ProvinceResponse{}, g.unavailable("province_by_code", err)
	}
	if !ok {
		return response_models.ProvinceResponse{}, utils.ErrProvinceNotFound
	}
	return toProvinceResponse(province), nil
}

// SearchProvinces matches both names when lang is empty or "any".
func (g *GeoService) SearchProvinces(query string, lang string, ctx context.Context) ([]response_models.ProvinceResponse, error) {
	provinces, err := g.dataset.SearchProvincesByName(ctx, query, searchLanguage(lang))
	if err != nil {
		return nil, g.unavailable("search_provinces", err)
	}
	return mapAll(provinces, toProvinceResponse), nil
}

func searchLanguage(lang string) dataset.Language {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "any", "all":
		return dataset.LanguageAny
	default:
		return dataset.ParseLanguage(lang)
	}
}

func (g *GeoService) GetDistrictsByProvinceId(provinceID int, ctx context.Context) ([]response_models.DistrictResponse, error) {
	districts, err := g.dataset.DistrictsByProvinceID(ctx, provinceID)
	if err != nil {
		return nil, g.unavailable("districts_by_province", err)
	}
	return mapAll(districts, toDistrictResponse), nil
}

func (g *GeoService) GetSubDistrictsByDistrictId(districtID int, ctx context.Context) ([]response_models.SubDistrictResponse, error) {
	subDistricts, err := g.dataset.SubDistrictsByDistrictID(ctx, districtID)
	if err != nil {
		return nil, g.unavailable("sub_districts_by_district", err)
	}
	return mapAll(subDistricts, toSubDistrictResponse), nil
}

func (g *GeoService) GetProvinceHierarchy(provinceID int, ctx context.Context) (response_models.HierarchyResponse, error) {
	h, ok, err := g.dataset.ProvinceHierarchy(ctx, provinceID)
	if err != nil {
		return response_models.HierarchyResponse{}, g.unavailable("province_hierarchy", err)
	}
	if !ok {
		return response_models.HierarchyResponse{}, utils.ErrProvinceNotFound
	}
	return response_models.HierarchyResponse{
		Province:         toProvinceResponse(h.Province),
		Districts:        mapAll(h.Districts, toDistrictResponse),
		DistrictCount:    len(h.Districts),
		SubDistrictCount: h.SubDistrictCount,
	}, nil
}

func (g *GeoService) GetStatistics(ctx context.Context) (response_models.StatisticsResponse, error) {
	stats, err := g.dataset.Statistics(ctx)
	if err != nil {
		return response_models.StatisticsResponse{}, g.unavailable("statistics", err)
	}
	return response_models.StatisticsResponse{
		Provinces:    stats.ProvinceCount,
		Districts:    stats.DistrictCount,
		SubDistricts: stats.SubDistrictCount,
	}, nil
}

func (g *GeoService) GetProvinceSummaries(ctx context.Context) ([]response_models.ProvinceSummaryResponse, error) {
	summaries, err := g.dataset.ProvinceSummaries(ctx)
	if err != nil {
		return nil, g.unavailable("province_summaries", err)
	}
	return mapAll(summaries, toSummaryResponse), nil
}

func (g *GeoService) GetFeaturedProvinces(codes []string, ctx context.Context) ([]response_models.ProvinceSummaryResponse, error) {
	if len(codes) == 0 {
		codes = dataset.DefaultFeaturedCodes
	}
	summaries, err := g.dataset.FeaturedProvinces(ctx, codes)
	if err != nil {
		return nil, g.unavailable("featured_provinces", err)
	}
	return mapAll(summaries, toSummaryResponse), nil
}

func mapAll[T, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}

func toProvinceResponse(p dataset.Province) response_models.ProvinceResponse {
	return response_models.ProvinceResponse{
		ID:          p.ID,
		Code:        p.Code,
		NameThai:    p.NameThai,
		NameEnglish: p.NameEnglish,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toDistrictResponse(d dataset.District) response_models.DistrictResponse {
	return response_models.DistrictResponse{
		ID:          d.ID,
		ProvinceID:  d.ProvinceID,
		Code:        d.Code,
		NameThai:    d.NameThai,
		NameEnglish: d.NameEnglish,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toSubDistrictResponse(s dataset.SubDistrict) response_models.SubDistrictResponse {
	return response_models.SubDistrictResponse{
		ID:          s.ID,
		DistrictID:  s.DistrictID,
		Code:        s.Code,
		NameThai:    s.NameThai,
		NameEnglish: s.NameEnglish,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSummaryResponse(s dataset.ProvinceSummary) response_models.ProvinceSummaryResponse {
	return response_models.ProvinceSummaryResponse{
		ProvinceResponse: toProvinceResponse(s.Province),
		DistrictCount:    s.DistrictCount,
		SubDistrictCount: s.SubDistrictCount,
	}
}
