package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passforge/internal/breach"
	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
	"github.com/vaultpass/passforge/internal/repository"
	"github.com/vaultpass/passforge/internal/service"
	"github.com/vaultpass/passforge/internal/strength"
)

const (
	testSecret     = "test-secret"
	testPassphrase = "correct horse battery staple"
)

type stubChecker struct{ result breach.Result }

func (c stubChecker) Check(context.Context, string) breach.Result { return c.result }

func newTestRouter(t *testing.T, withAuth bool) http.Handler {
	t.Helper()
	lists := crypto.NewWordLists()
	services := Services{
		Generator: service.NewGeneratorService(
			crypto.NewGenerator(crypto.SecureSource(), lists),
			strength.NewEstimator(strength.DefaultRates(), lists),
			stubChecker{result: breach.Result{State: breach.StateSafe}},
		),
		Share:     service.NewShareService(lists, testSecret, time.Hour),
		JWTSecret: testSecret,
	}

	if withAuth {
		hash, err := crypto.HashPassphrase(crypto.SecureSource(), testPassphrase)
		require.NoError(t, err)
		store, err := repository.NewBoltSettings(filepath.Join(t.TempDir(), "settings.db"))
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })

		services.Auth = service.NewAuthService(hash, testSecret, time.Hour)
		services.Settings = service.NewSettingsService(store, lists)
	}
	return NewRouter(services)
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, false), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleGenerate(t *testing.T) {
	h := newTestRouter(t, false)

	t.Run("defaults without body", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/generate", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var resp model.GenerateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Password, 16)
		assert.Equal(t, model.ModeRandom, resp.Mode)
		assert.Equal(t, 103, resp.Entropy.Bits)
		assert.Nil(t, resp.Breach)
	})

	t.Run("readable with breach check", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/generate",
			`{"mode":"readable","word_count":3,"separator":".","breach_check":true}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.GenerateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ModeReadable, resp.Mode)
		assert.Equal(t, 3, resp.WordCount)
		assert.Len(t, strings.Split(resp.Password, "."), 4)
		require.NotNil(t, resp.Breach)
		assert.Equal(t, "safe", resp.Breach.State)
	})

	t.Run("policy error is 400", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/generate",
			`{"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "character type")
	})

	t.Run("invalid json", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/generate", `{"length":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("body too large", func(t *testing.T) {
		body := `{"preset":"` + strings.Repeat("x", maxBodySize) + `"}`
		rec := do(t, h, http.MethodPost, "/api/v1/generate", body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestHandleBulk(t *testing.T) {
	h := newTestRouter(t, false)

	t.Run("json", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/generate/bulk", `{"count":5,"length":12}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.BulkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Passwords, 5)
		assert.NotEmpty(t, resp.BatchID)
		for _, p := range resp.Passwords {
			assert.Len(t, p, 12)
		}
	})

	t.Run("csv", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/generate/bulk", `{"count":3}`, "Accept", "text/csv")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), rec.Header().Get("X-Batch-ID"))

		records, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, []string{"index", "password"}, records[0])
		assert.Equal(t, "3", records[3][0])
	})

	t.Run("clamped", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/generate/bulk", `{"count":100000,"length":4}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.BulkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Passwords, service.MaxBulkCount)
	})
}

func TestHandleEvaluate(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(t, h, http.MethodPost, "/api/v1/evaluate", `{"password":"password","uppercase":false,"numbers":false,"symbols":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 38, resp.Entropy.Bits)
	assert.Equal(t, "Weak", resp.Strength.Label)
	assert.Equal(t, 0, resp.Pattern.Score)
	assert.Equal(t, []string{crypto.IssueFewClasses}, resp.ComplianceIssues)

	rec = do(t, h, http.MethodPost, "/api/v1/evaluate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogueRoutes(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(t, h, http.MethodGet, "/api/v1/wordlists", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var lists []model.WordListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lists))
	assert.Len(t, lists, 3)

	rec = do(t, h, http.MethodGet, "/api/v1/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var presets []model.PresetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &presets))
	assert.Equal(t, "custom", presets[0].Key)
}

func TestShareRoutes(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(t, h, http.MethodPost, "/api/v1/share", `{"preset":"nist-strong","length":20}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var share model.ShareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &share))
	require.NotEmpty(t, share.Token)

	rec = do(t, h, http.MethodGet, "/api/v1/share/"+share.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var policy model.Policy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &policy))
	assert.Equal(t, model.ModeRandom, policy.Mode)
	assert.Equal(t, 20, policy.Length)
	assert.True(t, policy.Symbols)

	rec = do(t, h, http.MethodGet, "/api/v1/share/not-a-token", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthAndSettings(t *testing.T) {
	h := newTestRouter(t, true)

	rec := do(t, h, http.MethodGet, "/api/v1/settings", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/login", `{"passphrase":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/login", `{"passphrase":"`+testPassphrase+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var auth model.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))
	bearer := "Bearer " + auth.Token

	rec = do(t, h, http.MethodGet, "/api/v1/settings", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings model.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, model.DefaultSettings().Policy, settings.Policy)

	settings.Policy.Length = 32
	settings.BreachCheck = true
	body, err := json.Marshal(settings)
	require.NoError(t, err)

	rec = do(t, h, http.MethodPut, "/api/v1/settings", string(body), "Authorization", bearer)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/settings", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, 32, settings.Policy.Length)
	assert.True(t, settings.BreachCheck)

	rec = do(t, h, http.MethodPut, "/api/v1/settings", `{"policy":{"mode":"random","length":2,"lowercase":true}}`, "Authorization", bearer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsRoutesAbsentWithoutAuth(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(t, h, http.MethodPost, "/api/v1/auth/login", `{"passphrase":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/v1/settings", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
