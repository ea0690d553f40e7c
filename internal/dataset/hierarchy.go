package dataset

import "context"

// ProvinceHierarchy joins a province to its districts and counts the
// sub-districts under them. ok is false when no province has the id.
func (d *Dataset) ProvinceHierarchy(ctx context.Context, provinceID int) (Hierarchy, bool, error) {
	provinces, districts, subDistricts, err := d.all(ctx)
	if err != nil {
		return Hierarchy{}, false, err
	}

	province, ok := provinceByID(provinces, provinceID)
	if !ok {
		return Hierarchy{}, false, nil
	}

	own := districtsOf(districts, provinceID)
	ids := make(map[int]struct{}, len(own))
	for _, dist := range own {
		ids[dist.ID] = struct{}{}
	}

	count := 0
	for _, sd := range subDistricts {
		if _, ok := ids[sd.DistrictID]; ok {
			count++
		}
	}

	return Hierarchy{
		Province:         province,
		Districts:        own,
		SubDistrictCount: count,
	}, true, nil
}

// ProvinceSummaries returns every province with its district and
// sub-district counts, in province order.
func (d *Dataset) ProvinceSummaries(ctx context.Context) ([]ProvinceSummary, error) {
	provinces, districts, subDistricts, err := d.all(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(provinces, districts, subDistricts, nil), nil
}

// FeaturedProvinces summarizes the provinces whose codes are listed, in
// dataset order. Unknown codes are skipped.
func (d *Dataset) FeaturedProvinces(ctx context.Context, codes []string) ([]ProvinceSummary, error) {
	provinces, districts, subDistricts, err := d.all(ctx)
	if err != nil {
		return nil, err
	}
	want := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		want[c] = struct{}{}
	}
	return summarize(provinces, districts, subDistricts, func(p Province) bool {
		_, ok := want[p.Code]
		return ok
	}), nil
}

func summarize(provinces []Province, districts []District, subDistricts []SubDistrict, keep func(Province) bool) []ProvinceSummary {
	// district id -> province id, and sub-district tallies per district
	owner := make(map[int]int, len(districts))
	districtCount := make(map[int]int)
	for _, dist := range districts {
		owner[dist.ID] = dist.ProvinceID
		districtCount[dist.ProvinceID]++
	}
	subCount := make(map[int]int)
	for _, sd := range subDistricts {
		if pid, ok := owner[sd.DistrictID]; ok {
			subCount[pid]++
		}
	}

	out := make([]ProvinceSummary, 0, len(provinces))
	for _, p := range provinces {
		if keep != nil && !keep(p) {
			continue
		}
		out = append(out, ProvinceSummary{
			Province:         p,
			DistrictCount:    districtCount[p.ID],
			SubDistrictCount: subCount[p.ID],
		})
	}
	return out
}
