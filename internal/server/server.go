// Package server is the thin HTTP surface over the extraction pipeline.
// Every failure leaves as a structured {ok:false, error} payload; raw
// panics or stack traces never reach the client.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rxlens/rxlens/internal/config"
	"github.com/rxlens/rxlens/internal/core"
	"github.com/rxlens/rxlens/internal/core/model"
	"github.com/rxlens/rxlens/internal/interaction"
	"github.com/rxlens/rxlens/internal/llm"
	"github.com/rxlens/rxlens/internal/metrics"
	"github.com/rxlens/rxlens/internal/store"
)

type Server struct {
	Pipeline *core.Pipeline
	Store    store.Store
	Checker  *interaction.Checker

	reviewThreshold float64
}

// NewServer wires the full application from config: LLM client,
// pipeline, prescription store, and interaction checker. The LLM client
// and the interaction knowledge source are optional; the pipeline
// degrades to its offline stages without them.
func NewServer(cfg *config.Config) (*Server, error) {
	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Printf("Warning: LLM client unavailable (%v), running extraction offline", err)
		llmClient = nil
	}

	var st store.Store
	if cfg.Storage.Path != "" {
		st, err = store.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open prescription store: %w", err)
		}
	}

	var source interaction.KnowledgeSource
	if cfg.Interaction.GraphURI != "" {
		graph, err := interaction.NewGraphKnowledgeSource(cfg.Interaction.GraphURI, cfg.Interaction.GraphUser, cfg.Interaction.GraphPassword)
		if err != nil {
			log.Printf("Warning: interaction knowledge graph unavailable (%v), interaction checks will report unknown severity", err)
		} else {
			source = graph
		}
	}

	return NewServerWith(core.NewPipeline(llmClient, cfg), st, interaction.NewChecker(source), cfg.Server.ReviewConfidenceThreshold), nil
}

// NewServerWith assembles a server from already-built components.
func NewServerWith(pipeline *core.Pipeline, st store.Store, checker *interaction.Checker, reviewThreshold float64) *Server {
	return &Server{
		Pipeline:        pipeline,
		Store:           st,
		Checker:         checker,
		reviewThreshold: reviewThreshold,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal error"})
	}))
	r.Use(requestMetrics())

	r.POST("/ai/normalize-and-extract", s.NormalizeAndExtract)
	r.POST("/ai/check-interaction", s.CheckInteraction)
	r.POST("/ai/save-prescription", s.SavePrescription)
	r.GET("/health", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.HTTPRequestTotals.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			fmt.Sprintf("%d", c.Writer.Status()),
		).Inc()
	}
}

type extractRequest struct {
	ReviewedText    string  `json:"reviewed_text"`
	OCRConfidence   float64 `json:"ocr_confidence"`
	PatientVerified bool    `json:"patient_verified"`
	Debug           bool    `json:"debug"`
}

func (s *Server) NormalizeAndExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}

	reviewedText := strings.TrimSpace(req.ReviewedText)
	if reviewedText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "reviewed_text is required"})
		return
	}

	debug := req.Debug || c.Query("debug") == "true"
	result := s.Pipeline.NormalizeAndExtract(c.Request.Context(), reviewedText, debug)
	result.Normalized.NeedsTermReview = result.Normalized.Confidence < s.reviewThreshold

	resp := gin.H{
		"ok":         true,
		"normalized": result.Normalized,
		"entities":   result.Entities,
	}
	if result.Debug != nil {
		resp["extraction_debug"] = result.Debug
	}
	c.JSON(http.StatusOK, resp)
}

type interactionRequest struct {
	NewMed      string   `json:"new_med"`
	CurrentMeds []string `json:"current_meds"`
	// Legacy field names accepted for older callers.
	NewMedication       string   `json:"new_medication"`
	ExistingMedications []string `json:"existing_medications"`
}

func (s *Server) CheckInteraction(c *gin.Context) {
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}

	newMed := strings.TrimSpace(req.NewMed)
	if newMed == "" {
		newMed = strings.TrimSpace(req.NewMedication)
	}
	currentMeds := req.CurrentMeds
	if len(currentMeds) == 0 {
		currentMeds = req.ExistingMedications
	}

	if newMed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "new_med (or new_medication) is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"new_med":      newMed,
		"current_meds": currentMeds,
		"interactions": s.Checker.Check(c.Request.Context(), newMed, currentMeds),
	})
}

type savePrescriptionRequest struct {
	PatientID     any                 `json:"patient_id"`
	DoctorID      any                 `json:"doctor_id"`
	S3ImageURL    string              `json:"s3_image_url"`
	ReviewedText  string              `json:"reviewed_text"`
	OCRConfidence float64             `json:"ocr_confidence"`
	Entities      *model.EntityBundle `json:"entities"`
}

func (s *Server) SavePrescription(c *gin.Context) {
	var req savePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}

	switch {
	case req.PatientID == nil:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required field: patient_id"})
		return
	case req.DoctorID == nil:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required field: doctor_id"})
		return
	case req.S3ImageURL == "":
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required field: s3_image_url"})
		return
	case req.Entities == nil:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required field: entities"})
		return
	}

	if s.Store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Storage not configured"})
		return
	}

	saved, err := s.Store.SavePrescription(c.Request.Context(), store.SavePrescriptionParams{
		PatientID:     fmt.Sprint(req.PatientID),
		DoctorID:      fmt.Sprint(req.DoctorID),
		ImageURL:      req.S3ImageURL,
		ReviewedText:  req.ReviewedText,
		OCRConfidence: req.OCRConfidence,
		Entities:      req.Entities,
	})
	if err != nil {
		log.Printf("save prescription failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Database error"})
		return
	}

	var medNames []string
	for _, med := range req.Entities.Medications {
		medNames = append(medNames, med.Name)
	}
	interactions := s.Checker.CheckAllPairs(c.Request.Context(), medNames)

	warnings := []string{}
	for _, finding := range interactions {
		if finding.Severity == model.SeverityHigh {
			warnings = append(warnings, finding.Summary)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"prescription_id": saved.ID,
		"medicines_saved": saved.MedicinesSaved,
		"interactions":    interactions,
		"warnings":        warnings,
	})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"aliases_loaded": s.Pipeline.Index.Len(),
		"interaction_kb": s.Checker.Available(),
		"storage":        s.Store != nil,
	})
}
