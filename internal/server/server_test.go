package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxlens/rxlens/internal/config"
	"github.com/rxlens/rxlens/internal/core"
	"github.com/rxlens/rxlens/internal/core/llmextract"
	"github.com/rxlens/rxlens/internal/interaction"
)

func newTestRouter(t *testing.T, response string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	client := &llmextract.MockLLMClient{Response: response}
	srv := NewServerWith(core.NewPipeline(client, cfg), nil, interaction.NewChecker(nil), cfg.Server.ReviewConfidenceThreshold)
	return srv.SetupRouter()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNormalizeAndExtractRequiresText(t *testing.T) {
	router := newTestRouter(t, "{}")

	rec := postJSON(t, router, "/ai/normalize-and-extract", gin.H{"reviewed_text": "   "})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "reviewed_text is required", resp["error"])
}

func TestNormalizeAndExtractHappyPath(t *testing.T) {
	router := newTestRouter(t, `{"medications": [], "conditions": [], "allergies": []}`)

	rec := postJSON(t, router, "/ai/normalize-and-extract", gin.H{
		"reviewed_text":  "Ibuprofen 200mg twice daily for 7 days",
		"ocr_confidence": 0.9,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK         bool `json:"ok"`
		Normalized struct {
			Confidence      float64 `json:"confidence"`
			NeedsTermReview bool    `json:"needs_term_review"`
		} `json:"normalized"`
		Entities struct {
			Medications []struct {
				Name string `json:"name"`
			} `json:"medications"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	require.Len(t, resp.Entities.Medications, 1)
	assert.Equal(t, "Ibuprofen", resp.Entities.Medications[0].Name)

	// Seven words of input stay well under the review threshold.
	assert.True(t, resp.Normalized.NeedsTermReview)
}

func TestCheckInteractionRequiresNewMed(t *testing.T) {
	router := newTestRouter(t, "{}")

	rec := postJSON(t, router, "/ai/check-interaction", gin.H{"current_meds": []string{"Aspirin"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInteractionUnknownWithoutKB(t *testing.T) {
	router := newTestRouter(t, "{}")

	rec := postJSON(t, router, "/ai/check-interaction", gin.H{
		"new_med":      "Warfarin",
		"current_meds": []string{"Aspirin"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK           bool   `json:"ok"`
		NewMed       string `json:"new_med"`
		Interactions []struct {
			Severity string `json:"severity"`
		} `json:"interactions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	assert.Equal(t, "Warfarin", resp.NewMed)
	require.Len(t, resp.Interactions, 1)
	assert.Equal(t, "unknown", resp.Interactions[0].Severity)
}

func TestCheckInteractionLegacyFieldNames(t *testing.T) {
	router := newTestRouter(t, "{}")

	rec := postJSON(t, router, "/ai/check-interaction", gin.H{
		"new_medication":       "Warfarin",
		"existing_medications": []string{"Aspirin"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Warfarin", resp["new_med"])
}

func TestSavePrescriptionValidation(t *testing.T) {
	router := newTestRouter(t, "{}")

	rec := postJSON(t, router, "/ai/save-prescription", gin.H{
		"doctor_id":    7,
		"s3_image_url": "s3://bucket/rx.png",
		"entities":     gin.H{"medications": []any{}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required field: patient_id", resp["error"])
}

func TestSavePrescriptionWithoutStore(t *testing.T) {
	router := newTestRouter(t, "{}")

	rec := postJSON(t, router, "/ai/save-prescription", gin.H{
		"patient_id":   12,
		"doctor_id":    7,
		"s3_image_url": "s3://bucket/rx.png",
		"entities":     gin.H{"medications": []any{}},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, "{}")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["interaction_kb"])
}
