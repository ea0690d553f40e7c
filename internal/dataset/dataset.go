// Package dataset holds the Thailand administrative-geography records and
// the read-only lookups, searches and joins over them.
package dataset

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dataset owns the three collections supplied by a RecordLoader. Nothing is
// loaded until first use; each collection is then loaded once and kept.
type Dataset struct {
	provinces    *cell[Province]
	districts    *cell[District]
	subDistricts *cell[SubDistrict]
	logger       *zap.Logger
}

type Option func(*Dataset)

func WithLogger(logger *zap.Logger) Option {
	return func(d *Dataset) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func New(loader RecordLoader, opts ...Option) *Dataset {
	d := &Dataset{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	d.provinces = newCell(CollectionProvinces, d.logger, loader.LoadProvinces)
	d.districts = newCell(CollectionDistricts, d.logger, loader.LoadDistricts)
	d.subDistricts = newCell(CollectionSubDistricts, d.logger, loader.LoadSubDistricts)
	return d
}

// Preload loads all three collections concurrently.
func (d *Dataset) Preload(ctx context.Context) error {
	_, _, _, err := d.all(ctx)
	return err
}

func (d *Dataset) all(ctx context.Context) ([]Province, []District, []SubDistrict, error) {
	var (
		provinces    []Province
		districts    []District
		subDistricts []SubDistrict
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		provinces, err = d.provinces.get(gctx)
		return err
	})
	g.Go(func() (err error) {
		districts, err = d.districts.get(gctx)
		return err
	})
	g.Go(func() (err error) {
		subDistricts, err = d.subDistricts.get(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return provinces, districts, subDistricts, nil
}

func (d *Dataset) Provinces(ctx context.Context) ([]Province, error) {
	items, err := d.provinces.get(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (d *Dataset) Districts(ctx context.Context) ([]District, error) {
	items, err := d.districts.get(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (d *Dataset) SubDistricts(ctx context.Context) ([]SubDistrict, error) {
	items, err := d.subDistricts.get(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

// ProvinceByCode returns the first province whose code equals code exactly.
func (d *Dataset) ProvinceByCode(ctx context.Context, code string) (Province, bool, error) {
	provinces, err := d.provinces.get(ctx)
	if err != nil {
		return Province{}, false, err
	}
	for _, p := range provinces {
		if p.Code == code {
			return p, true, nil
		}
	}
	return Province{}, false, nil
}

func (d *Dataset) ProvinceByID(ctx context.Context, id int) (Province, bool, error) {
	provinces, err := d.provinces.get(ctx)
	if err != nil {
		return Province{}, false, err
	}
	p, ok := provinceByID(provinces, id)
	return p, ok, nil
}

// SearchProvincesByName matches query as a case-insensitive substring of
// the Thai name when lang is LanguageThai and of the English name
// otherwise. An empty query matches every province.
func (d *Dataset) SearchProvincesByName(ctx context.Context, query string, lang Language) ([]Province, error) {
	if lang == LanguageAny {
		return d.SearchProvinces(ctx, query)
	}
	provinces, err := d.provinces.get(ctx)
	if err != nil {
		return nil, err
	}

	f := newFolder(lang)
	q := f.fold(query)
	results := make([]Province, 0)
	for _, p := range provinces {
		name := p.NameEnglish
		if lang == LanguageThai {
			name = p.NameThai
		}
		if f.contains(name, q) {
			results = append(results, p)
		}
	}
	return results, nil
}

// SearchProvinces matches query against either name.
func (d *Dataset) SearchProvinces(ctx context.Context, query string) ([]Province, error) {
	provinces, err := d.provinces.get(ctx)
	if err != nil {
		return nil, err
	}

	th, en := newFolder(LanguageThai), newFolder(LanguageEnglish)
	qth, qen := th.fold(query), en.fold(query)
	results := make([]Province, 0)
	for _, p := range provinces {
		if th.contains(p.NameThai, qth) || en.contains(p.NameEnglish, qen) {
			results = append(results, p)
		}
	}
	return results, nil
}

func (d *Dataset) DistrictsByProvinceID(ctx context.Context, provinceID int) ([]District, error) {
	districts, err := d.districts.get(ctx)
	if err != nil {
		return nil, err
	}
	return districtsOf(districts, provinceID), nil
}

func (d *Dataset) SubDistrictsByDistrictID(ctx context.Context, districtID int) ([]SubDistrict, error) {
	subDistricts, err := d.subDistricts.get(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]SubDistrict, 0)
	for _, sd := range subDistricts {
		if sd.DistrictID == districtID {
			results = append(results, sd)
		}
	}
	return results, nil
}

// Statistics counts the three collections from one joined load.
func (d *Dataset) Statistics(ctx context.Context) (Statistics, error) {
	provinces, districts, subDistricts, err := d.all(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return Statistics{
		ProvinceCount:    len(provinces),
		DistrictCount:    len(districts),
		SubDistrictCount: len(subDistricts),
	}, nil
}

func provinceByID(provinces []Province, id int) (Province, bool) {
	for _, p := range provinces {
		if p.ID == id {
			return p, true
		}
	}
	return Province{}, false
}

func districtsOf(districts []District, provinceID int) []District {
	results := make([]District, 0)
	for _, d := range districts {
		if d.ProvinceID == provinceID {
			results = append(results, d)
		}
	}
	return results
}
