package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/gemini-fashion-kit/pkg/domain"
	"github.com/shouni/gemini-fashion-kit/pkg/imgutil"
)

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestNew(t *testing.T) {
	f := newFixture(t)
	_, err := New(nil, f.creds, f.studio)
	assert.Error(t, err)
	_, err = New(f.sess, nil, f.studio)
	assert.Error(t, err)
	_, err = New(f.sess, f.creds, nil)
	assert.Error(t, err)
}

func TestHealthAndCatalog(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	health := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, false, health["configured"])

	rec = f.do(t, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cat := decodeBody[map[string]json.RawMessage](t, rec)
	for _, key := range []string{"lenses", "faceShapes", "modelAttributes", "cameraAngles", "poses", "concepts", "gridOptions"} {
		assert.Contains(t, cat, key)
	}

}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)

	for _, tc := range []struct {
		path   string
		method string
	}{
		{"/generate", http.MethodPost},
		{"/settings", http.MethodPut},
		{"/references/model/abc", http.MethodDelete},
		{"/credential/validate", http.MethodPost},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tc.path, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", tc.method)
			rec := httptest.NewRecorder()
			f.server.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), tc.method)
			assert.Empty(t, f.sess.History(), "プリフライトでは生成しない")
			assert.Empty(t, f.studio.validated)
		})
	}

	t.Run("未登録のパスでも CORS ヘッダーは付く", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/nowhere", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSettingsEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/settings/grid", map[string]int{"count": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decodeBody[domain.GenerationSettings](t, rec)
	assert.Equal(t, domain.LayoutGrid, settings.LayoutMode)
	assert.Len(t, settings.Poses, 4)

	rec = f.do(t, http.MethodPost, "/settings/grid", map[string]int{"count": 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	settings.AdditionalPrompt = "monochrome film look"
	rec = f.do(t, http.MethodPut, "/settings", settings)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "monochrome film look", f.sess.Settings().AdditionalPrompt)

	settings.GridCount = 7
	rec = f.do(t, http.MethodPut, "/settings", settings)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/prompt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	prompt := decodeBody[map[string]string](t, rec)
	assert.Contains(t, prompt["prompt"], "monochrome film look")

	rec = f.do(t, http.MethodGet, "/settings", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/settings/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.LayoutProfileSpread, decodeBody[domain.GenerationSettings](t, rec).LayoutMode)

	rec = f.do(t, http.MethodPost, "/settings/poses/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, f.sess.Settings().AdditionalPrompt)

	rec = f.do(t, http.MethodPost, "/settings/concept", map[string]string{"concept": "Seoul rooftop"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Seoul rooftop", f.sess.Settings().Concept)
	rec = f.do(t, http.MethodPost, "/settings/concept", map[string]string{"concept": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/settings/model/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "선택 안 함 (Default)", f.sess.Settings().Model.Proportion)
}

func TestGenerationEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/edit", map[string]string{"instruction": "brighter"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "まだ画像がない")

	rec = f.do(t, http.MethodPost, "/generate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	img := decodeBody[imageResponse](t, rec)
	assert.Equal(t, "generated", img.Label)

	rec = f.do(t, http.MethodPost, "/edit", map[string]string{"instruction": "brighter"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "수정: brighter", decodeBody[imageResponse](t, rec).Label)

	rec = f.do(t, http.MethodPost, "/edit", map[string]string{"instruction": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/consistent", map[string]string{"instruction": "sitting"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeBody[[]domain.GeneratedImage](t, rec)
	require.Len(t, history, 3)
	assert.Equal(t, "다음 컷: sitting", history[0].Prompt)

	rec = f.do(t, http.MethodPost, "/extract/background", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPost, "/edit/background", map[string]string{"image": "data:x", "instruction": "night"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPost, "/edit/outfit", map[string]string{"image": "data:x", "instruction": "red"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/generate", "not an object")
	assert.Equal(t, http.StatusOK, rec.Code, "生成はボディを読まない")
}

func TestReferenceEndpoints(t *testing.T) {
	f := newFixture(t)
	src := imgutil.EncodeDataURI("image/png", []byte("model"))

	rec := f.do(t, http.MethodPost, "/extract/outfit", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(domain.KindExtractSourceCount), decodeBody[errorBody](t, rec).Kind)

	rec = f.do(t, http.MethodPost, "/references/model", map[string][]string{"sources": {src}})
	require.Equal(t, http.StatusOK, rec.Code)
	added := decodeBody[struct {
		Added []domain.ReferenceImage `json:"added"`
	}](t, rec).Added
	require.Len(t, added, 1)

	rec = f.do(t, http.MethodPost, "/extract/outfit", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/references/model", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.ReferenceImage](t, rec), 1)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/references/model/%s/toggle", added[0].ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	refs := decodeBody[[]domain.ReferenceImage](t, f.do(t, http.MethodGet, "/references/model", nil))
	assert.False(t, refs[0].Selected)

	f.studio.err = domain.ErrNoReferenceSelected
	rec = f.do(t, http.MethodPost, "/generate/references", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(domain.KindNoReferenceSelected), decodeBody[errorBody](t, rec).Kind)
	f.studio.err = nil

	rec = f.do(t, http.MethodDelete, "/references/model/"+added[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = f.do(t, http.MethodDelete, "/references/model/"+added[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/references/shoes", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/references/clothing", map[string][]string{"sources": {}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantStatus      int
		wantKind        string
		wantReconfigure bool
	}{
		{"キー未設定", domain.ErrMissingCredential, http.StatusUnauthorized, "missing_credential", true},
		{"安全フィルター", domain.ErrUnsafeContent, http.StatusUnprocessableEntity, "unsafe_content", false},
		{"モデル拒否", &domain.GenerationError{Kind: domain.KindModelRefusal, Text: "I can't"}, http.StatusUnprocessableEntity, "model_refusal", false},
		{"認証エラー", errors.New("Error 403: PERMISSION_DENIED"), http.StatusUnauthorized, "", true},
		{"通信エラー", errors.New("connection reset"), http.StatusBadGateway, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.studio.err = tt.err

			rec := f.do(t, http.MethodPost, "/generate", nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody[errorBody](t, rec)
			assert.Equal(t, tt.err.Error(), body.Error)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.wantReconfigure, body.Reconfigure)
		})
	}
}

func TestCredentialEndpoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := f.do(t, http.MethodPut, "/credential", map[string]string{"apiKey": " AIza-test "})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[map[string]bool](t, rec)["configured"])
	key, err := f.creds.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AIza-test", key)

	rec = f.do(t, http.MethodGet, "/credential", nil)
	assert.True(t, decodeBody[map[string]bool](t, rec)["configured"])

	rec = f.do(t, http.MethodPost, "/credential/validate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody[map[string]any](t, rec)["valid"])
	assert.Equal(t, []string{"AIza-test"}, f.studio.validated, "ボディがなければ保存済みのキー")

	f.studio.validateErr = errors.New("403")
	rec = f.do(t, http.MethodPost, "/credential/validate", map[string]string{"apiKey": "other"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody[map[string]any](t, rec)["valid"])
	assert.Equal(t, "other", f.studio.validated[1])

	rec = f.do(t, http.MethodDelete, "/credential", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, f.creds.Configured(ctx))
}
