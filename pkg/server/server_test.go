package server

import (
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/duynguyendang/plantcurator/internal/manager"
	"github.com/duynguyendang/plantcurator/pkg/render"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
  {"korean_name": "스킨답서스", "difficulty": "하", "light_level": "중간", "size": "소",
   "air_purifying": "보통", "pet_safe": "주의", "growth_speed": "빠름", "image_file": "pothos.png"},
  {"korean_name": "몬스테라", "difficulty": "중", "light_level": "밝음", "size": "대",
   "air_purifying": "높음", "pet_safe": "주의", "growth_speed": "빠름"}
]`

func setupTestServer(t *testing.T, withCatalog bool) (*Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	images := filepath.Join(dir, "images")
	require.NoError(t, os.MkdirAll(images, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(images, "pothos.png"), []byte("fake-png"), 0644))

	path := filepath.Join(dir, "plants_data.json")
	if withCatalog {
		require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0644))
	}

	m, err := manager.NewCatalogManager(2)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	rec := service.NewRecommender(m, service.Options{
		CatalogPath:    path,
		ImagesDir:      images,
		ImageURLPrefix: ImagesRoute,
	})
	return NewServer(rec), path
}

func pothosQuery(mode string) string {
	v := url.Values{}
	v.Set("difficulty", "하")
	v.Set("light_level", "중간")
	v.Set("size", "소")
	v.Set("air_purifying", "보통")
	v.Set("pet_safe", "주의")
	v.Set("growth_speed", "빠름")
	if mode != "" {
		v.Set("mode", mode)
	}
	return v.Encode()
}

func do(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, target, nil)
	}
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPassthrough(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestIndex_Prompt(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Q1. 관리 난이도")
	assert.Contains(t, body, "Q6. 생장 속도")
	assert.Contains(t, body, render.SelectAllPrompt)
	assert.NotContains(t, body, render.ResultsHeader)
}

func TestIndex_Results(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/?"+pothosQuery(""), "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, render.ResultsHeader)
	assert.Contains(t, body, "1. 스킨답서스")
	assert.Contains(t, body, "(6/6)")
	assert.Contains(t, body, "2. 몬스테라")
	assert.Contains(t, body, `src="/images/pothos.png"`)
	assert.Contains(t, body, `title="매우 귀찮음 (물 주기를 자주 잊어요)`)
	assert.Contains(t, body, render.NoImageRegistered)
	assert.Contains(t, body, render.NoManagementTip)
	assert.Less(t, strings.Index(body, "1. 스킨답서스"), strings.Index(body, "2. 몬스테라"))
}

func TestIndex_Exact(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/?"+pothosQuery("exact"), "")
	body := w.Body.String()
	assert.Contains(t, body, "1. 스킨답서스")
	assert.NotContains(t, body, "몬스테라")
	assert.NotContains(t, body, "(6/6)")
}

func TestIndex_InvalidAnswer(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/?size=huge", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown option")
}

func TestIndex_CatalogMissing(t *testing.T) {
	srv, path := setupTestServer(t, false)

	w := do(srv, "GET", "/?"+pothosQuery(""), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), path)
	assert.NotContains(t, w.Body.String(), render.ResultsHeader)
}

func TestQuestions(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/v1/questions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions   []QuestionResponse `json:"questions"`
		DefaultMode string             `json:"default_mode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Questions, 6)
	assert.Equal(t, "difficulty", resp.Questions[0].Key)
	assert.Len(t, resp.Questions[4].Options, 2)
	assert.Equal(t, "scored", resp.DefaultMode)
}

func TestRecommendAPI(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	body := `{"answers": {"difficulty": "하", "light_level": "중간", "size": "소",
	  "air_purifying": "보통", "pet_safe": "주의", "growth_speed": "보통"}, "mode": "scored"}`
	w := do(srv, "POST", "/v1/recommend", body)
	require.Equal(t, http.StatusOK, w.Code)

	var view render.ResultView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Plants, 2)
	assert.Equal(t, "스킨답서스", view.Plants[0].Name)
	assert.Equal(t, 5, view.Plants[0].Score)
	assert.Equal(t, 1, view.Plants[1].Score)
}

func TestRecommendAPI_Errors(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "POST", "/v1/recommend", `{"answers": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(srv, "POST", "/v1/recommend", `{"answers": {"size": "소"}, "mode": "fuzzy"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlants(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/v1/plants", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)

	missing, _ := setupTestServer(t, false)
	w = do(missing, "GET", "/v1/plants", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPlantByName(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/v1/plants/"+url.PathEscape("몬스테라"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"light_level":"밝음"`)

	w = do(srv, "GET", "/v1/plants/"+url.PathEscape("선인장"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	missing, _ := setupTestServer(t, false)
	w = do(missing, "GET", "/v1/plants/"+url.PathEscape("몬스테라"), "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReload(t *testing.T) {
	srv, path := setupTestServer(t, true)

	do(srv, "GET", "/v1/plants", "")
	require.NoError(t, os.WriteFile(path, []byte(`[{"korean_name": "a"}]`), 0644))

	w := do(srv, "POST", "/v1/catalog/reload", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestImages(t *testing.T) {
	srv, _ := setupTestServer(t, true)

	w := do(srv, "GET", "/images/pothos.png", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fake-png", w.Body.String())

	w = do(srv, "GET", "/images/monstera.png", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndex_ImageURLsWithSpecialNames(t *testing.T) {
	srv, path := setupTestServer(t, true)
	images := srv.recommender.ImagesDir()

	files := []string{"a#1.png", "b?x.png", "몬 스테라.png"}
	var records []string
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(images, f), []byte(f), 0644))
		records = append(records, `{"korean_name": "`+f+`", "difficulty": "하", "light_level": "중간",
		  "size": "소", "air_purifying": "보통", "pet_safe": "주의", "growth_speed": "빠름",
		  "image_file": "`+f+`"}`)
	}
	require.NoError(t, os.WriteFile(path, []byte("["+strings.Join(records, ",")+"]"), 0644))
	require.Equal(t, http.StatusOK, do(srv, "POST", "/v1/catalog/reload", "").Code)

	w := do(srv, "GET", "/?"+pothosQuery("exact"), "")
	require.Equal(t, http.StatusOK, w.Code)

	srcs := regexp.MustCompile(`<img src="([^"]+)"`).FindAllStringSubmatch(w.Body.String(), -1)
	require.Len(t, srcs, len(files))
	for i, m := range srcs {
		src := html.UnescapeString(m[1])
		img := do(srv, "GET", src, "")
		assert.Equal(t, http.StatusOK, img.Code, src)
		assert.Equal(t, files[i], img.Body.String(), src)
	}
}
