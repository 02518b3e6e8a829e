package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tenderguard/go-tenderguard/pkg/dataset"
	"github.com/tenderguard/go-tenderguard/pkg/engine"
	"github.com/tenderguard/go-tenderguard/pkg/models"
	"github.com/tenderguard/go-tenderguard/pkg/report"
	"github.com/tenderguard/go-tenderguard/pkg/storage"
)

var (
	guard         *engine.Engine
	datasetStore  storage.DatasetStore
	maxUploadSize int64
)

func main() {
	initLogger()

	guard = engine.Default()
	datasetStore = storage.NewMemoryStore()
	maxUploadSize = envInt64("TENDERGUARD_MAX_UPLOAD_MB", 32) << 20

	r := setupRouter()

	addr := envString("TENDERGUARD_ADDR", ":8080")
	slog.Info("tenderguard dashboard listening", "addr", addr, "rules", len(guard.Rules()))
	if err := r.Run(addr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func setupRouter() *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = maxUploadSize

	r.GET("/healthz", handleHealth)

	api := r.Group("/api/v1")
	api.POST("/datasets", handleUpload)
	api.GET("/datasets", handleListDatasets)
	api.DELETE("/datasets/:id", handleDeleteDataset)
	api.GET("/datasets/:id/contracts", handleContracts)
	api.GET("/datasets/:id/summary", handleSummary)
	api.GET("/datasets/:id/export", handleExport)

	return r
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleUpload ingests a contract CSV, scores every record and stores the
// result for exploration. Scoring happens exactly once, at upload time.
func handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds size limit"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer f.Close()

	records, err := dataset.Load(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scored := guard.ScoreDataset(records)
	ds := &storage.Dataset{
		ID:     uuid.NewString(),
		Name:   file.Filename,
		Scored: scored,
	}
	if err := datasetStore.Save(ds); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slog.Info("dataset scored", "dataset", ds.ID, "name", ds.Name, "rows", len(scored.Contracts))
	c.JSON(http.StatusCreated, gin.H{
		"id":      ds.ID,
		"name":    ds.Name,
		"rows":    len(scored.Contracts),
		"columns": engine.DerivedColumns(),
		"summary": report.Summarize(scored),
	})
}

func handleListDatasets(c *gin.Context) {
	ids, err := datasetStore.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": ids})
}

func handleDeleteDataset(c *gin.Context) {
	if err := datasetStore.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func handleContracts(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	filtered, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := filtered.Apply(ds.Scored)
	views := make([]contractView, 0, len(sub.Contracts))
	for i := range sub.Contracts {
		views = append(views, newContractView(&sub.Contracts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"contracts": views, "total": len(views)})
}

func handleSummary(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}
	filtered, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := filtered.Apply(ds.Scored)
	top := make([]contractView, 0)
	for _, sc := range report.HighestRisk(sub, 25) {
		top = append(top, newContractView(&sc))
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":     report.Summarize(sub),
		"highestRisk": top,
	})
}

// handleExport streams the scored dataset back as CSV, mirroring the
// dashboard's download button.
func handleExport(c *gin.Context) {
	ds, ok := loadDataset(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "scored_"+ds.Name))

	w := csv.NewWriter(c.Writer)
	header := []string{
		"contract_id", "contract_name", "vendor", "publicEntityName",
		"procurement_method", "status", "contract_amount",
	}
	header = append(header, engine.DerivedColumns()...)
	_ = w.Write(header)

	for i := range ds.Scored.Contracts {
		sc := &ds.Scored.Contracts[i]
		_ = w.Write([]string{
			sc.ContractID,
			sc.ContractName,
			sc.Vendor,
			sc.PublicEntityName,
			sc.ProcurementMethod,
			sc.Status,
			formatOptional(sc.ContractAmount),
			strconv.FormatFloat(sc.Assessment.Score, 'f', -1, 64),
			string(sc.Assessment.Level),
			sc.Assessment.ReasonsText(),
			strconv.Itoa(sc.Assessment.TriggerCount),
		})
	}
	w.Flush()
}

func loadDataset(c *gin.Context) (*storage.Dataset, bool) {
	ds, err := datasetStore.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	if ds == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return nil, false
	}
	return ds, true
}

// filterFromQuery builds a report.Filter from the request's query string:
// repeatable "status" and "level" params plus "min_score"/"max_score".
func filterFromQuery(c *gin.Context) (report.Filter, error) {
	var f report.Filter
	f.Statuses = c.QueryArray("status")

	for _, raw := range c.QueryArray("level") {
		level, err := parseLevel(raw)
		if err != nil {
			return f, err
		}
		f.Levels = append(f.Levels, level)
	}

	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("invalid min_score %q", raw)
		}
		f.MinScore = &v
	}
	if raw := c.Query("max_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("invalid max_score %q", raw)
		}
		f.MaxScore = &v
	}
	return f, nil
}

func parseLevel(raw string) (models.RiskLevel, error) {
	for _, level := range models.Levels {
		if strings.EqualFold(raw, string(level)) {
			return level, nil
		}
	}
	return "", fmt.Errorf("invalid risk level %q", raw)
}

// contractView is the JSON shape of one scored contract. Absent numeric
// fields serialize as null, never as zero.
type contractView struct {
	ContractID        string   `json:"contractId,omitempty"`
	ContractName      string   `json:"contractName,omitempty"`
	Vendor            string   `json:"vendor,omitempty"`
	PublicEntityName  string   `json:"publicEntityName,omitempty"`
	ProcurementMethod string   `json:"procurementMethod,omitempty"`
	Status            string   `json:"status,omitempty"`
	ContractAmount    *float64 `json:"contractAmount"`
	EstimatedCost     *float64 `json:"estimatedCost"`
	ActualPaymentMade *float64 `json:"actualPaymentMade"`

	RiskScore        float64            `json:"riskScore"`
	RiskLevel        models.RiskLevel   `json:"riskLevel"`
	RiskReasons      string             `json:"riskReasons"`
	RiskTriggerCount int                `json:"riskTriggerCount"`
	Violations       []models.Violation `json:"violations"`
}

func newContractView(sc *engine.ScoredContract) contractView {
	return contractView{
		ContractID:        sc.ContractID,
		ContractName:      sc.ContractName,
		Vendor:            sc.Vendor,
		PublicEntityName:  sc.PublicEntityName,
		ProcurementMethod: sc.ProcurementMethod,
		Status:            sc.Status,
		ContractAmount:    sc.ContractAmount,
		EstimatedCost:     sc.EstimatedCost,
		ActualPaymentMade: sc.ActualPaymentMade,
		RiskScore:         sc.Assessment.Score,
		RiskLevel:         sc.Assessment.Level,
		RiskReasons:       sc.Assessment.ReasonsText(),
		RiskTriggerCount:  sc.Assessment.TriggerCount,
		Violations:        sc.Assessment.Violations,
	}
}

func formatOptional(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// initLogger wires a structured slog logger from the environment:
// TENDERGUARD_LOG_LEVEL (debug/info/warn/error) and TENDERGUARD_LOG_FORMAT
// (json/text).
func initLogger() {
	level := slog.LevelInfo
	switch strings.ToLower(envString("TENDERGUARD_LOG_LEVEL", "info")) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(envString("TENDERGUARD_LOG_FORMAT", "text")) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
