package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pricelens/backend/internal/domain"
	"github.com/pricelens/backend/internal/usecase"
)

// Messages shown to users. Clients display them in a banner that
// dismisses itself after errorDismissAfterMs.
const (
	msgMissingInput       = "Please select a country and enter a product query."
	msgSearchFailed       = "An error occurred while searching. Please try again."
	msgSearchInProgress   = "A search is already in progress. Please wait for it to finish."
	msgInvalidBody        = "Invalid request body"
	msgServiceUnavailable = "Search service not configured"

	errorDismissAfterMs = 5000

	// clientIDHeader identifies a browser session across requests
	clientIDHeader = "X-Client-ID"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.SearchService) *Handler {
	return &Handler{
		searchService: searchService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricelens-backend",
		"version": "1.0.0",
	})
}

// Search handles POST /api/v1/search with a JSON body
func (h *Handler) Search(c *gin.Context) {
	var request domain.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	h.runSearch(c, &request)
}

// SearchQuery handles GET /api/v1/search?country=&query=
func (h *Handler) SearchQuery(c *gin.Context) {
	var request domain.SearchRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	h.runSearch(c, &request)
}

func (h *Handler) runSearch(c *gin.Context, request *domain.SearchRequest) {
	if h.searchService == nil {
		respondError(c, http.StatusServiceUnavailable, msgServiceUnavailable)
		return
	}

	request.ClientID = clientKey(c)

	result, err := h.searchService.Search(c.Request.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			respondError(c, http.StatusBadRequest, msgMissingInput)
		case errors.Is(err, domain.ErrSearchInProgress):
			respondError(c, http.StatusConflict, msgSearchInProgress)
		default:
			log.Printf("[SEARCH] Search failed for %s/%q: %v", request.Country, request.Query, err)
			respondError(c, http.StatusInternalServerError, msgSearchFailed)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Countries lists the supported countries
func (h *Handler) Countries(c *gin.Context) {
	if h.searchService == nil {
		respondError(c, http.StatusServiceUnavailable, msgServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": h.searchService.Countries()})
}

// Vendors lists the vendors of one country
func (h *Handler) Vendors(c *gin.Context) {
	if h.searchService == nil {
		respondError(c, http.StatusServiceUnavailable, msgServiceUnavailable)
		return
	}

	code := c.Param("code")
	vendors, err := h.searchService.Vendors(code)
	if err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			respondError(c, http.StatusNotFound, "Country not supported: "+strings.ToUpper(code))
			return
		}
		respondError(c, http.StatusInternalServerError, msgSearchFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country": strings.ToUpper(strings.TrimSpace(code)),
		"vendors": vendors,
	})
}

// Examples lists the preset example searches
func (h *Handler) Examples(c *gin.Context) {
	if h.searchService == nil {
		respondError(c, http.StatusServiceUnavailable, msgServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{"examples": h.searchService.Examples()})
}

// RecentSearches returns the search history, newest first
func (h *Handler) RecentSearches(c *gin.Context) {
	if h.searchService == nil {
		respondError(c, http.StatusServiceUnavailable, msgServiceUnavailable)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.searchService.RecentSearches(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[HISTORY] Failed to load recent searches: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load recent searches")
		return
	}

	c.JSON(http.StatusOK, gin.H{"searches": records})
}

// clientKey identifies the caller for the one-search-at-a-time rule
func clientKey(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(clientIDHeader)); id != "" {
		return id
	}
	return c.ClientIP()
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":          message,
		"dismissAfterMs": errorDismissAfterMs,
	})
}
