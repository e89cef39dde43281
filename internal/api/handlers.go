package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/epsilon003/Illegally-Blonde/internal/cache"
	"github.com/epsilon003/Illegally-Blonde/internal/config"
	"github.com/epsilon003/Illegally-Blonde/internal/database"
	"github.com/epsilon003/Illegally-Blonde/internal/extract"
	"github.com/epsilon003/Illegally-Blonde/internal/scraper"
	"github.com/epsilon003/Illegally-Blonde/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error kinds surfaced in the API result union.
const (
	kindValidation      = "validation"
	kindCaptchaRequired = "captcha_required"
	kindFetchFailed     = "fetch_failed"
	kindUnavailable     = "unavailable"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	db         *gorm.DB
	cache      cache.Cache
	scraper    *scraper.Scraper
	downloader *scraper.JudgmentDownloader
	logger     *logger.Logger
	cfg        *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, cache cache.Cache, scraper *scraper.Scraper, downloader *scraper.JudgmentDownloader, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:         db,
		cache:      cache,
		scraper:    scraper,
		downloader: downloader,
		logger:     logger,
		cfg:        cfg,
	}
}

func errorResponse(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{
		"status": "error",
		"error": gin.H{
			"kind":    kind,
			"message": message,
		},
	})
}

// caseRequest is the JSON body for a case fetch. Year arrives as a string
// so its validation can distinguish not-an-integer from out-of-range.
type caseRequest struct {
	CaseType   string `json:"case_type"`
	CaseNumber string `json:"case_number"`
	Year       string `json:"year"`
	CourtType  string `json:"court_type"`
	CourtName  string `json:"court_name"`
}

// validateCaseRequest gates input before any navigation happens.
func (h *Handlers) validateCaseRequest(req caseRequest) (extract.CaseQuery, error) {
	caseType, err := extract.ValidateCaseType(req.CaseType)
	if err != nil {
		return extract.CaseQuery{}, err
	}

	caseNumber, err := extract.ValidateCaseNumber(req.CaseNumber)
	if err != nil {
		return extract.CaseQuery{}, err
	}

	year, err := extract.ValidateYear(req.Year)
	if err != nil {
		return extract.CaseQuery{}, err
	}

	courtType := extract.CourtType(req.CourtType)
	if req.CourtType == "" {
		courtType = extract.HighCourt
	}
	if !courtType.Valid() {
		return extract.CaseQuery{}, &extract.ValidationError{
			Field: "court_type", Kind: extract.KindFormat,
			Message: "court_type must be high_court or district_court",
		}
	}

	courtName := req.CourtName
	if courtName == "" {
		courtName = h.cfg.DefaultCourtName
	}

	return extract.CaseQuery{
		CaseType:   caseType,
		CaseNumber: caseNumber,
		Year:       year,
		CourtType:  courtType,
		CourtName:  courtName,
	}, nil
}

// saveQueryLog persists the audit row. The lookup result has already been
// decided by the time this runs, so a storage failure is logged, not fatal.
func (h *Handlers) saveQueryLog(queryLog *database.Query) {
	if err := h.db.Create(queryLog).Error; err != nil {
		h.logger.Error("Failed to save query", "error", err)
	}
}

// FetchCase handles a case lookup: validate, cache check, scrape, persist.
func (h *Handlers) FetchCase(c *gin.Context) {
	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, kindValidation, "invalid request body: "+err.Error())
		return
	}

	query, err := h.validateCaseRequest(req)
	if err != nil {
		var verr *extract.ValidationError
		if errors.As(err, &verr) {
			errorResponse(c, http.StatusBadRequest, kindValidation+"_"+verr.Kind, verr.Message)
		} else {
			errorResponse(c, http.StatusBadRequest, kindValidation, err.Error())
		}
		return
	}

	queryHash := query.Hash()
	cacheKey := cache.Key(queryHash)
	if cached, found := h.cache.Get(cacheKey); found {
		h.logger.Info("Cache hit", "hash", queryHash)
		c.JSON(http.StatusOK, gin.H{
			"status":     "success",
			"query_hash": queryHash,
			"data":       cached,
			"from_cache": true,
		})
		return
	}

	if h.scraper == nil {
		errorResponse(c, http.StatusServiceUnavailable, kindUnavailable, "scraper is not available")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.ScraperTimeout)
	defer cancel()

	record, rawHTML, err := h.scraper.FetchCase(ctx, query)

	queryLog := &database.Query{
		CaseType:    query.CaseType,
		CaseNumber:  query.CaseNumber,
		Year:        query.Year,
		CourtType:   string(query.CourtType),
		CourtName:   query.CourtName,
		QueryHash:   queryHash,
		RawResponse: rawHTML,
		QueryTime:   time.Now(),
		IPAddress:   c.ClientIP(),
	}

	if err != nil {
		queryLog.Status = "error"
		queryLog.ErrorMessage = err.Error()
		h.saveQueryLog(queryLog)

		if errors.Is(err, extract.ErrCaptchaRequired) {
			errorResponse(c, http.StatusConflict, kindCaptchaRequired, err.Error())
			return
		}
		errorResponse(c, http.StatusBadGateway, kindFetchFailed, "failed to fetch case data: "+err.Error())
		return
	}

	queryLog.Status = "success"
	if parsed, jsonErr := json.Marshal(record); jsonErr == nil {
		queryLog.ParsedData = string(parsed)
	}
	h.saveQueryLog(queryLog)

	h.cache.Set(cacheKey, record)

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"query_id":   queryLog.ID,
		"query_hash": queryHash,
		"data":       record,
		"from_cache": false,
	})
}

// FetchCauseList handles a daily cause list lookup for a court and date.
func (h *Handlers) FetchCauseList(c *gin.Context) {
	var req struct {
		CourtType string `json:"court_type"`
		CourtName string `json:"court_name"`
		Date      string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, kindValidation, "invalid request body: "+err.Error())
		return
	}

	courtType := extract.CourtType(req.CourtType)
	if req.CourtType == "" {
		courtType = extract.HighCourt
	}
	if !courtType.Valid() {
		errorResponse(c, http.StatusBadRequest, kindValidation, "court_type must be high_court or district_court")
		return
	}

	courtName := req.CourtName
	if courtName == "" {
		courtName = h.cfg.DefaultCourtName
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	if h.scraper == nil {
		errorResponse(c, http.StatusServiceUnavailable, kindUnavailable, "scraper is not available")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.ScraperTimeout)
	defer cancel()

	entries, _, err := h.scraper.FetchCauseList(ctx, courtType, courtName, date)
	if err != nil {
		if errors.Is(err, extract.ErrCaptchaRequired) {
			errorResponse(c, http.StatusConflict, kindCaptchaRequired, err.Error())
			return
		}
		errorResponse(c, http.StatusBadGateway, kindFetchFailed, "failed to fetch cause list: "+err.Error())
		return
	}

	fetch := &database.CauseListFetch{
		CourtType: string(courtType),
		CourtName: courtName,
		ListDate:  date,
		CaseCount: len(entries),
		FetchTime: time.Now(),
	}
	if encoded, jsonErr := json.Marshal(entries); jsonErr == nil {
		fetch.Entries = string(encoded)
	}
	if err := h.db.Create(fetch).Error; err != nil {
		h.logger.Error("Failed to save cause list", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"court":  courtName,
		"date":   date,
		"cases":  entries,
	})
}

// DownloadJudgment fetches a judgment PDF and streams it back.
func (h *Handlers) DownloadJudgment(c *gin.Context) {
	var req struct {
		QueryID     uint   `json:"query_id"`
		JudgmentURL string `json:"judgment_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.JudgmentURL == "" {
		errorResponse(c, http.StatusBadRequest, kindValidation, "judgment_url is required")
		return
	}

	if h.downloader == nil {
		errorResponse(c, http.StatusServiceUnavailable, kindUnavailable, "downloader is not available")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.DownloadTimeout)
	defer cancel()

	judgment, err := h.downloader.Download(ctx, req.QueryID, req.JudgmentURL)
	if err != nil {
		errorResponse(c, http.StatusBadGateway, kindFetchFailed, "failed to download judgment: "+err.Error())
		return
	}

	c.FileAttachment(judgment.FilePath, judgment.Filename)
}

// BulkFetch runs up to ten case lookups concurrently.
func (h *Handlers) BulkFetch(c *gin.Context) {
	var req struct {
		Queries []caseRequest `json:"queries" binding:"required,min=1,max=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}

	queries := make([]extract.CaseQuery, 0, len(req.Queries))
	for _, item := range req.Queries {
		query, err := h.validateCaseRequest(item)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, kindValidation, err.Error())
			return
		}
		queries = append(queries, query)
	}

	if h.scraper == nil {
		errorResponse(c, http.StatusServiceUnavailable, kindUnavailable, "scraper is not available")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.ScraperTimeout*time.Duration(len(queries)))
	defer cancel()

	results := h.scraper.FetchCaseConcurrent(ctx, queries)

	responseData := make([]gin.H, 0, len(results))
	for _, result := range results {
		data := gin.H{
			"query": result.Query,
		}
		if result.Err != nil {
			data["status"] = "error"
			data["error"] = gin.H{"kind": kindFetchFailed, "message": result.Err.Error()}
		} else {
			data["status"] = "success"
			data["data"] = result.Record
		}
		responseData = append(responseData, data)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": responseData,
	})
}

// Courts returns the supported court names per portal family.
func (h *Handlers) Courts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"high_courts": []string{
			"Delhi", "Mumbai", "Kolkata", "Chennai", "Allahabad",
			"Karnataka", "Gujarat", "Rajasthan", "Madhya Pradesh",
			"Kerala", "Punjab and Haryana", "Patna", "Telangana",
		},
		"district_courts": []string{
			"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata",
		},
	})
}

// History returns the most recent queries.
func (h *Handlers) History(c *gin.Context) {
	var queries []database.Query
	h.db.Select("id", "case_type", "case_number", "year", "court_type", "court_name", "query_hash", "status", "query_time").
		Order("query_time DESC").
		Limit(50).
		Find(&queries)

	history := make([]gin.H, 0, len(queries))
	for _, q := range queries {
		history = append(history, gin.H{
			"id":          q.ID,
			"case_type":   q.CaseType,
			"case_number": q.CaseNumber,
			"year":        q.Year,
			"court_type":  q.CourtType,
			"court_name":  q.CourtName,
			"query_hash":  q.QueryHash,
			"status":      q.Status,
			"query_time":  q.QueryTime,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"history": history,
	})
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	var count int64
	dbHealthy := h.db.Model(&database.Query{}).Count(&count).Error == nil

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.cache.Stats(),
	})
}
