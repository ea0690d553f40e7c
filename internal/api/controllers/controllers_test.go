package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"thaigeo/internal/dataset"
	"thaigeo/internal/services"
)

type fixedLoader struct {
	err error
}

func (f fixedLoader) LoadProvinces(context.Context) ([]dataset.Province, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []dataset.Province{
		{ID: 1, Code: "10", NameThai: "กรุงเทพมหานคร", NameEnglish: "Bangkok"},
		{ID: 38, Code: "50", NameThai: "เชียงใหม่", NameEnglish: "Chiang Mai"},
	}, nil
}

func (f fixedLoader) LoadDistricts(context.Context) ([]dataset.District, error) {
	return []dataset.District{
		{ID: 1, ProvinceID: 1, Code: "1001", NameEnglish: "Phra Nakhon"},
		{ID: 3, ProvinceID: 38, Code: "5001", NameEnglish: "Mueang Chiang Mai"},
	}, nil
}

func (f fixedLoader) LoadSubDistricts(context.Context) ([]dataset.SubDistrict, error) {
	return []dataset.SubDistrict{
		{ID: 1, DistrictID: 1, Code: "100101"},
		{ID: 2, DistrictID: 1, Code: "100102"},
	}, nil
}

func newRouter(loader dataset.RecordLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	svc := services.NewGeoService(dataset.New(loader), logger)

	r := gin.New()
	RegisterRoutes(r,
		NewProvincesController(svc, logger),
		NewDistrictsController(svc, logger),
		NewStatisticsController(svc, logger),
	)
	return r
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func get(t *testing.T, r *gin.Engine, target string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	}
	return w.Code, body
}

func TestRoutes_Success(t *testing.T) {
	r := newRouter(fixedLoader{})

	tests := []struct {
		target string
		want   string
	}{
		{"/statistics", `{"provinces":2,"districts":2,"sub_districts":2}`},
		{"/provinces/code/50", `{"id":38,"code":"50","name_th":"เชียงใหม่","name_en":"Chiang Mai"}`},
		{"/provinces/search?q=BANG&lang=english", `[{"id":1,"code":"10","name_th":"กรุงเทพมหานคร","name_en":"Bangkok"}]`},
		{"/provinces/search?q=zzz", `[]`},
		{"/provinces/1/districts", `[{"id":1,"province_id":1,"code":"1001","name_th":"","name_en":"Phra Nakhon"}]`},
		{"/provinces/404/districts", `[]`},
		{"/districts/1/sub-districts", `[{"id":1,"district_id":1,"code":"100101","name_th":"","name_en":""},{"id":2,"district_id":1,"code":"100102","name_th":"","name_en":""}]`},
		{"/provinces/featured?codes=50,%2010", `[{"id":1,"code":"10","name_th":"กรุงเทพมหานคร","name_en":"Bangkok","district_count":1,"sub_district_count":2},{"id":38,"code":"50","name_th":"เชียงใหม่","name_en":"Chiang Mai","district_count":1,"sub_district_count":0}]`},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			code, body := get(t, r, tc.target)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, "success", body.Status)
			assert.JSONEq(t, tc.want, string(body.Data))
		})
	}
}

func TestRoutes_Paged(t *testing.T) {
	r := newRouter(fixedLoader{})

	code, body := get(t, r, "/provinces?page=2&pageSize=1")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"items":[{"id":38,"code":"50","name_th":"เชียงใหม่","name_en":"Chiang Mai"}],"page":2,"page_size":1,"total":2}`, string(body.Data))

	code, body = get(t, r, "/provinces?page=100000000000000000&pageSize=100")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"items":[],"page":100000000000000000,"page_size":100,"total":2}`, string(body.Data))

	code, body = get(t, r, "/sub-districts")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"page_size":20`)
}

func TestRoutes_Hierarchy(t *testing.T) {
	r := newRouter(fixedLoader{})

	code, body := get(t, r, "/provinces/1/hierarchy")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"district_count":1`)
	assert.Contains(t, string(body.Data), `"sub_district_count":2`)
}

func TestRoutes_Errors(t *testing.T) {
	r := newRouter(fixedLoader{})

	tests := []struct {
		target string
		code   int
	}{
		{"/provinces/code/99", http.StatusNotFound},
		{"/provinces/404/hierarchy", http.StatusNotFound},
		{"/provinces/abc/districts", http.StatusBadRequest},
		{"/districts/x/sub-districts", http.StatusBadRequest},
		{"/provinces?page=0", http.StatusBadRequest},
		{"/districts?pageSize=101", http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			code, body := get(t, r, tc.target)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestRoutes_Unavailable(t *testing.T) {
	r := newRouter(fixedLoader{err: dataset.SourceUnavailable(dataset.CollectionProvinces, errors.New("no route to host"))})

	code, body := get(t, r, "/statistics")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "error", body.Status)

	code, _ = get(t, r, "/healthz")
	assert.Equal(t, http.StatusOK, code)
}
