package loaders

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thaigeo/internal/dataset"
)

const provincesJSON = `{
  "provinces": [
    {"PROVINCE_ID": 1, "CODE": "10", "PROVINCE_THAI": "กรุงเทพมหานคร", "PROVINCE_ENGLISH": "Bangkok",
     "UPDATED_AT": "2025-01-01 00:00:00", "CREATED_AT": "2019-08-09 03:33:09"},
    {"PROVINCE_ID": 38, "CODE": "50", "PROVINCE_THAI": "เชียงใหม่", "PROVINCE_ENGLISH": "Chiang Mai",
     "UPDATED_AT": "", "CREATED_AT": ""}
  ]
}`

const districtsJSON = `{"districts": [
  {"DISTRICT_ID": 1, "PROVINCE_ID": 1, "CODE": "1001", "DISTRICT_THAI": "พระนคร", "DISTRICT_ENGLISH": "Phra Nakhon"}
]}`

const subDistrictsJSON = `{"sub_districts": [
  {"SUB_DISTRICT_ID": 1, "DISTRICT_ID": 1, "CODE": "100101", "SUB_DISTRICT_THAI": "พระบรมมหาราชวัง", "SUB_DISTRICT_ENGLISH": "Phra Borom Maha Ratchawang"},
  {"SUB_DISTRICT_ID": 2, "DISTRICT_ID": 1, "CODE": "100102", "SUB_DISTRICT_THAI": "วังบูรพาภิรมย์", "SUB_DISTRICT_ENGLISH": "Wang Burapha Phirom"}
]}`

const provincesCSV = "\xef\xbb\xbfPROVINCE_ID,CODE,PROVINCE_THAI,PROVINCE_ENGLISH,UPDATED_AT,CREATED_AT\n" +
	`1,"10","กรุงเทพมหานคร","Bangkok","2025-01-01 00:00:00","2019-08-09 03:33:09"` + "\n" +
	`38,"50","เชียงใหม่","Chiang Mai, North"` + "\n"

const districtsCSV = "DISTRICT_ID,PROVINCE_ID,CODE,DISTRICT_THAI,DISTRICT_ENGLISH,UPDATED_AT,CREATED_AT\n" +
	`1,1,"1001","พระนคร","Phra Nakhon","",""` + "\n\n"

const subDistrictsCSV = "SUB_DISTRICT_ID,DISTRICT_ID,CODE,SUB_DISTRICT_THAI,SUB_DISTRICT_ENGLISH,UPDATED_AT,CREATED_AT\n" +
	`1,1,"100101","พระบรมมหาราชวัง","Phra Borom Maha Ratchawang","",""` + "\n"

func writeDataset(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return root
}

func TestSourceLoaderJSON(t *testing.T) {
	ctx := context.Background()
	root := writeDataset(t, map[string]string{
		"json/provinces.json":     provincesJSON,
		"json/districts.json":     districtsJSON,
		"json/sub_districts.json": subDistrictsJSON,
	})
	l := NewSourceLoader(NewDirSource(root), FormatJSON, nil)

	provinces, err := l.LoadProvinces(ctx)
	require.NoError(t, err)
	require.Len(t, provinces, 2)
	assert.Equal(t, dataset.Province{
		ID:          1,
		Code:        "10",
		NameThai:    "กรุงเทพมหานคร",
		NameEnglish: "Bangkok",
		UpdatedAt:   "2025-01-01 00:00:00",
		CreatedAt:   "2019-08-09 03:33:09",
	}, provinces[0])

	districts, err := l.LoadDistricts(ctx)
	require.NoError(t, err)
	require.Len(t, districts, 1)
	assert.Equal(t, 1, districts[0].ProvinceID)
	assert.Equal(t, "Phra Nakhon", districts[0].NameEnglish)

	subDistricts, err := l.LoadSubDistricts(ctx)
	require.NoError(t, err)
	require.Len(t, subDistricts, 2)
	assert.Equal(t, 1, subDistricts[1].DistrictID)
	assert.Equal(t, "100102", subDistricts[1].Code)
}

func TestSourceLoaderCSV(t *testing.T) {
	ctx := context.Background()
	root := writeDataset(t, map[string]string{
		"csv/provinces.csv":     provincesCSV,
		"csv/districts.csv":     districtsCSV,
		"csv/sub_districts.csv": subDistrictsCSV,
	})
	l := NewSourceLoader(NewDirSource(root), FormatCSV, nil)

	provinces, err := l.LoadProvinces(ctx)
	require.NoError(t, err)
	require.Len(t, provinces, 2)
	assert.Equal(t, 1, provinces[0].ID, "byte order mark is stripped from the header")
	assert.Equal(t, "10", provinces[0].Code)
	assert.Equal(t, "2019-08-09 03:33:09", provinces[0].CreatedAt)
	assert.Equal(t, "Chiang Mai, North", provinces[1].NameEnglish, "quoted commas stay in the field")
	assert.Empty(t, provinces[1].UpdatedAt, "missing trailing cells read as empty")

	districts, err := l.LoadDistricts(ctx)
	require.NoError(t, err)
	require.Len(t, districts, 1)
	assert.Equal(t, "1001", districts[0].Code)

	subDistricts, err := l.LoadSubDistricts(ctx)
	require.NoError(t, err)
	require.Len(t, subDistricts, 1)
	assert.Equal(t, "Phra Borom Maha Ratchawang", subDistricts[0].NameEnglish)
}

func TestSourceLoaderErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is source unavailable", func(t *testing.T) {
		l := NewSourceLoader(NewDirSource(t.TempDir()), FormatJSON, nil)
		_, err := l.LoadProvinces(ctx)
		assert.ErrorIs(t, err, dataset.ErrSourceUnavailable)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("broken json is malformed", func(t *testing.T) {
		root := writeDataset(t, map[string]string{"json/provinces.json": `{"provinces": [`})
		l := NewSourceLoader(NewDirSource(root), FormatJSON, nil)
		_, err := l.LoadProvinces(ctx)
		assert.ErrorIs(t, err, dataset.ErrMalformedSource)
		assert.NotErrorIs(t, err, dataset.ErrSourceUnavailable)
	})

	t.Run("wrong json type is malformed", func(t *testing.T) {
		root := writeDataset(t, map[string]string{"json/districts.json": `{"districts": [{"DISTRICT_ID": "one"}]}`})
		l := NewSourceLoader(NewDirSource(root), FormatJSON, nil)
		_, err := l.LoadDistricts(ctx)
		assert.ErrorIs(t, err, dataset.ErrMalformedSource)
	})

	t.Run("missing array is empty", func(t *testing.T) {
		root := writeDataset(t, map[string]string{"json/sub_districts.json": `{}`})
		l := NewSourceLoader(NewDirSource(root), FormatJSON, nil)
		got, err := l.LoadSubDistricts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("non integer id in csv is malformed", func(t *testing.T) {
		root := writeDataset(t, map[string]string{
			"csv/provinces.csv": "PROVINCE_ID,CODE\nabc,10\n",
		})
		l := NewSourceLoader(NewDirSource(root), FormatCSV, nil)
		_, err := l.LoadProvinces(ctx)
		assert.ErrorIs(t, err, dataset.ErrMalformedSource)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("missing key column in csv is malformed", func(t *testing.T) {
		root := writeDataset(t, map[string]string{
			"csv/districts.csv": "DISTRICT_ID,CODE\n1,1001\n",
		})
		l := NewSourceLoader(NewDirSource(root), FormatCSV, nil)
		_, err := l.LoadDistricts(ctx)
		assert.ErrorIs(t, err, dataset.ErrMalformedSource)
		assert.Contains(t, err.Error(), "PROVINCE_ID")
	})

	t.Run("empty csv is empty", func(t *testing.T) {
		root := writeDataset(t, map[string]string{"csv/sub_districts.csv": ""})
		l := NewSourceLoader(NewDirSource(root), FormatCSV, nil)
		got, err := l.LoadSubDistricts(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "json": FormatJSON, " CSV ": FormatCSV} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "json/provinces.json", ObjectName(dataset.CollectionProvinces, FormatJSON))
	assert.Equal(t, "csv/sub_districts.csv", ObjectName(dataset.CollectionSubDistricts, FormatCSV))
}

func TestSourceLoaderFeedsDataset(t *testing.T) {
	root := writeDataset(t, map[string]string{
		"json/provinces.json":     provincesJSON,
		"json/districts.json":     districtsJSON,
		"json/sub_districts.json": subDistrictsJSON,
	})
	d := dataset.New(NewSourceLoader(NewDirSource(root), FormatJSON, nil))

	h, ok, err := d.ProvinceHierarchy(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, h.Districts, 1)
	assert.Equal(t, 2, h.SubDistrictCount)
}
