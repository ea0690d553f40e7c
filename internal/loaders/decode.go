package loaders

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"thaigeo/internal/dataset"
)

// Source keys used by both the JSON and the CSV form of the dataset.
const (
	keyProvinceID         = "PROVINCE_ID"
	keyDistrictID         = "DISTRICT_ID"
	keySubDistrictID      = "SUB_DISTRICT_ID"
	keyCode               = "CODE"
	keyProvinceThai       = "PROVINCE_THAI"
	keyProvinceEnglish    = "PROVINCE_ENGLISH"
	keyDistrictThai       = "DISTRICT_THAI"
	keyDistrictEnglish    = "DISTRICT_ENGLISH"
	keySubDistrictThai    = "SUB_DISTRICT_THAI"
	keySubDistrictEnglish = "SUB_DISTRICT_ENGLISH"
	keyUpdatedAt          = "UPDATED_AT"
	keyCreatedAt          = "CREATED_AT"
)

type provinceRow struct {
	ProvinceID      int    `json:"PROVINCE_ID"`
	Code            string `json:"CODE"`
	ProvinceThai    string `json:"PROVINCE_THAI"`
	ProvinceEnglish string `json:"PROVINCE_ENGLISH"`
	UpdatedAt       string `json:"UPDATED_AT"`
	CreatedAt       string `json:"CREATED_AT"`
}

type districtRow struct {
	DistrictID      int    `json:"DISTRICT_ID"`
	ProvinceID      int    `json:"PROVINCE_ID"`
	Code            string `json:"CODE"`
	DistrictThai    string `json:"DISTRICT_THAI"`
	DistrictEnglish string `json:"DISTRICT_ENGLISH"`
	UpdatedAt       string `json:"UPDATED_AT"`
	CreatedAt       string `json:"CREATED_AT"`
}

type subDistrictRow struct {
	SubDistrictID      int    `json:"SUB_DISTRICT_ID"`
	DistrictID         int    `json:"DISTRICT_ID"`
	Code               string `json:"CODE"`
	SubDistrictThai    string `json:"SUB_DISTRICT_THAI"`
	SubDistrictEnglish string `json:"SUB_DISTRICT_ENGLISH"`
	UpdatedAt          string `json:"UPDATED_AT"`
	CreatedAt          string `json:"CREATED_AT"`
}

func (r provinceRow) record() dataset.Province {
	return dataset.Province{
		ID:          r.ProvinceID,
		Code:        r.Code,
		NameThai:    r.ProvinceThai,
		NameEnglish: r.ProvinceEnglish,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r districtRow) record() dataset.District {
	return dataset.District{
		ID:          r.DistrictID,
		ProvinceID:  r.ProvinceID,
		Code:        r.Code,
		NameThai:    r.DistrictThai,
		NameEnglish: r.DistrictEnglish,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r subDistrictRow) record() dataset.SubDistrict {
	return dataset.SubDistrict{
		ID:          r.SubDistrictID,
		DistrictID:  r.DistrictID,
		Code:        r.Code,
		NameThai:    r.SubDistrictThai,
		NameEnglish: r.SubDistrictEnglish,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func decodeProvincesJSON(data []byte) ([]dataset.Province, error) {
	var doc struct {
		Provinces []provinceRow `json:"provinces"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return mapRows(doc.Provinces, provinceRow.record), nil
}

func decodeDistrictsJSON(data []byte) ([]dataset.District, error) {
	var doc struct {
		Districts []districtRow `json:"districts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return mapRows(doc.Districts, districtRow.record), nil
}

func decodeSubDistrictsJSON(data []byte) ([]dataset.SubDistrict, error) {
	var doc struct {
		SubDistricts []subDistrictRow `json:"sub_districts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return mapRows(doc.SubDistricts, subDistrictRow.record), nil
}

func decodeProvincesCSV(data []byte) ([]dataset.Province, error) {
	return decodeCSV(data, []string{keyProvinceID}, func(r csvRow) (dataset.Province, error) {
		id, err := r.int(keyProvinceID)
		if err != nil {
			return dataset.Province{}, err
		}
		return provinceRow{
			ProvinceID:      id,
			Code:            r.get(keyCode),
			ProvinceThai:    r.get(keyProvinceThai),
			ProvinceEnglish: r.get(keyProvinceEnglish),
			UpdatedAt:       r.get(keyUpdatedAt),
			CreatedAt:       r.get(keyCreatedAt),
		}.record(), nil
	})
}

func decodeDistrictsCSV(data []byte) ([]dataset.District, error) {
	return decodeCSV(data, []string{keyDistrictID, keyProvinceID}, func(r csvRow) (dataset.District, error) {
		id, err := r.int(keyDistrictID)
		if err != nil {
			return dataset.District{}, err
		}
		pid, err := r.int(keyProvinceID)
		if err != nil {
			return dataset.District{}, err
		}
		return districtRow{
			DistrictID:      id,
			ProvinceID:      pid,
			Code:            r.get(keyCode),
			DistrictThai:    r.get(keyDistrictThai),
			DistrictEnglish: r.get(keyDistrictEnglish),
			UpdatedAt:       r.get(keyUpdatedAt),
			CreatedAt:       r.get(keyCreatedAt),
		}.record(), nil
	})
}

func decodeSubDistrictsCSV(data []byte) ([]dataset.SubDistrict, error) {
	return decodeCSV(data, []string{keySubDistrictID, keyDistrictID}, func(r csvRow) (dataset.SubDistrict, error) {
		id, err := r.int(keySubDistrictID)
		if err != nil {
			return dataset.SubDistrict{}, err
		}
		did, err := r.int(keyDistrictID)
		if err != nil {
			return dataset.SubDistrict{}, err
		}
		return subDistrictRow{
			SubDistrictID:      id,
			DistrictID:         did,
			Code:               r.get(keyCode),
			SubDistrictThai:    r.get(keySubDistrictThai),
			SubDistrictEnglish: r.get(keySubDistrictEnglish),
			UpdatedAt:          r.get(keyUpdatedAt),
			CreatedAt:          r.get(keyCreatedAt),
		}.record(), nil
	})
}

func mapRows[R, T any](rows []R, f func(R) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, f(r))
	}
	return out
}

// csvRow is one data line addressed by header name. Cells missing from a
// short line read as "".
type csvRow struct {
	line   int
	index  map[string]int
	fields []string
}

func (r csvRow) get(key string) string {
	i, ok := r.index[key]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r csvRow) int(key string) (int, error) {
	v := r.get(key)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q is not an integer", r.line, key, v)
	}
	return n, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

func decodeCSV[T any](data []byte, required []string, f func(csvRow) (T, error)) ([]T, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, key := range required {
		if _, ok := index[key]; !ok {
			return nil, fmt.Errorf("missing column %s", key)
		}
	}

	out := make([]T, 0)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		line, _ := reader.FieldPos(0)
		rec, err := f(csvRow{line: line, index: index, fields: fields})
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
