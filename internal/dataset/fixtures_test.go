package dataset

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
)

// stubLoader serves fixed collections and counts calls per collection.
type stubLoader struct {
	provinces    []Province
	districts    []District
	subDistricts []SubDistrict

	provinceErr    error
	districtErr    error
	subDistrictErr error

	// gate, when set, blocks every load until it is closed. The per-collection
	// gates block only their own collection.
	gate            chan struct{}
	provinceGate    chan struct{}
	districtGate    chan struct{}
	subDistrictGate chan struct{}

	provinceCalls    atomic.Int32
	districtCalls    atomic.Int32
	subDistrictCalls atomic.Int32
}

func (s *stubLoader) wait(ctx context.Context, own chan struct{}) error {
	for _, gate := range []chan struct{}{s.gate, own} {
		if gate == nil {
			continue
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (s *stubLoader) LoadProvinces(ctx context.Context) ([]Province, error) {
	s.provinceCalls.Add(1)
	if err := s.wait(ctx, s.provinceGate); err != nil {
		return nil, err
	}
	return s.provinces, s.provinceErr
}

func (s *stubLoader) LoadDistricts(ctx context.Context) ([]District, error) {
	s.districtCalls.Add(1)
	if err := s.wait(ctx, s.districtGate); err != nil {
		return nil, err
	}
	return s.districts, s.districtErr
}

func (s *stubLoader) LoadSubDistricts(ctx context.Context) ([]SubDistrict, error) {
	s.subDistrictCalls.Add(1)
	if err := s.wait(ctx, s.subDistrictGate); err != nil {
		return nil, err
	}
	return s.subDistricts, s.subDistrictErr
}

func sampleLoader() *stubLoader {
	return &stubLoader{
		provinces: []Province{
			{ID: 1, Code: "10", NameThai: "กรุงเทพมหานคร", NameEnglish: "Bangkok"},
			{ID: 38, Code: "50", NameThai: "เชียงใหม่", NameEnglish: "Chiang Mai"},
			{ID: 45, Code: "57", NameThai: "เชียงราย", NameEnglish: "Chiang Rai"},
			{ID: 67, Code: "83", NameThai: "ภูเก็ต", NameEnglish: "Phuket"},
		},
		districts: []District{
			{ID: 1, ProvinceID: 1, Code: "1001", NameThai: "พระนคร", NameEnglish: "Phra Nakhon"},
			{ID: 2, ProvinceID: 1, Code: "1002", NameThai: "ดุสิต", NameEnglish: "Dusit"},
			{ID: 3, ProvinceID: 38, Code: "5001", NameThai: "เมืองเชียงใหม่", NameEnglish: "Mueang Chiang Mai"},
			{ID: 4, ProvinceID: 67, Code: "8301", NameThai: "เมืองภูเก็ต", NameEnglish: "Mueang Phuket"},
		},
		subDistricts: []SubDistrict{
			{ID: 1, DistrictID: 1, Code: "100101", NameThai: "พระบรมมหาราชวัง", NameEnglish: "Phra Borom Maha Ratchawang"},
			{ID: 2, DistrictID: 1, Code: "100102", NameThai: "วังบูรพาภิรมย์", NameEnglish: "Wang Burapha Phirom"},
			{ID: 3, DistrictID: 2, Code: "100201", NameThai: "ดุสิต", NameEnglish: "Dusit"},
			{ID: 4, DistrictID: 3, Code: "500101", NameThai: "ศรีภูมิ", NameEnglish: "Si Phum"},
			{ID: 5, DistrictID: 99, Code: "999901", NameThai: "orphan", NameEnglish: "Orphan"},
		},
	}
}

// syntheticLoader builds a deterministic dataset of 50 provinces, 200
// districts and 500 sub-districts with uneven fan-out.
func syntheticLoader() *stubLoader {
	s := &stubLoader{}
	for i := 1; i <= 50; i++ {
		s.provinces = append(s.provinces, Province{
			ID:          i,
			Code:        fmt.Sprintf("%02d", i+9),
			NameThai:    fmt.Sprintf("จังหวัด%d", i),
			NameEnglish: fmt.Sprintf("Province %d", i),
		})
	}
	for i := 1; i <= 200; i++ {
		// skews districts towards low province ids and leaves a few empty
		pid := (i*i)%47 + 1
		s.districts = append(s.districts, District{
			ID:         i,
			ProvinceID: pid,
			Code:       fmt.Sprintf("%02d%02d", pid, i%100),
		})
	}
	for i := 1; i <= 500; i++ {
		did := (i*7)%203 + 1 // ids 201..203 do not exist
		s.subDistricts = append(s.subDistricts, SubDistrict{
			ID:         i,
			DistrictID: did,
			Code:       fmt.Sprintf("%06d", i),
		})
	}
	return s
}

func requireCalls(t *testing.T, s *stubLoader, provinces, districts, subDistricts int32) {
	t.Helper()
	if got := s.provinceCalls.Load(); got != provinces {
		t.Errorf("LoadProvinces called %d times, want %d", got, provinces)
	}
	if got := s.districtCalls.Load(); got != districts {
		t.Errorf("LoadDistricts called %d times, want %d", got, districts)
	}
	if got := s.subDistrictCalls.Load(); got != subDistricts {
		t.Errorf("LoadSubDistricts called %d times, want %d", got, subDistricts)
	}
}
