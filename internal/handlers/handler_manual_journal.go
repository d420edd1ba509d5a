package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/manual_journal_service/internal/core/ports/services"
	"github.com/SscSPs/manual_journal_service/internal/dto"
	"github.com/SscSPs/manual_journal_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// manualJournalHandler handles HTTP requests related to manual journals.
type manualJournalHandler struct {
	journalService portssvc.ManualJournalSvcFacade
	postingService portssvc.JournalPostingSvc
}

// newManualJournalHandler creates a new manualJournalHandler.
func newManualJournalHandler(journalService portssvc.ManualJournalSvcFacade, postingService portssvc.JournalPostingSvc) *manualJournalHandler {
	return &manualJournalHandler{
		journalService: journalService,
		postingService: postingService,
	}
}

// actingUser returns the authenticated caller or aborts with 401.
func actingUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// createManualJournal godoc
// @Summary Create a manual journal
// @Description Validates and stores a new manual journal. Omit journalNumber to use the tenant's automatic numbering.
// @Tags manual-journals
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param journal body dto.ManualJournalRequest true "Manual journal"
// @Success 201 {object} dto.ManualJournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals [post]
func (h *manualJournalHandler) createManualJournal(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var req dto.ManualJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateManualJournal(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create manual journal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToManualJournalResponse(journal))
}

// editManualJournal godoc
// @Summary Edit a manual journal
// @Description Replaces a manual journal and its entries. Publication is never undone by an edit.
// @Tags manual-journals
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param id path string true "Manual journal ID"
// @Param journal body dto.ManualJournalRequest true "Manual journal"
// @Success 200 {object} dto.EditManualJournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals/{id} [post]
func (h *manualJournalHandler) editManualJournal(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	journalID := c.Param("id")

	var req dto.ManualJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	journal, old, err := h.journalService.EditManualJournal(c.Request.Context(), tenantID, journalID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to edit manual journal")
		return
	}
	c.JSON(http.StatusOK, dto.EditManualJournalResponse{
		ManualJournal:    dto.ToManualJournalResponse(journal),
		OldManualJournal: dto.ToManualJournalResponse(old),
	})
}

// deleteManualJournal godoc
// @Summary Delete a manual journal
// @Tags manual-journals
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param id path string true "Manual journal ID"
// @Success 200 {object} map[string]dto.ManualJournalResponse "oldManualJournal"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals/{id} [delete]
func (h *manualJournalHandler) deleteManualJournal(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	journalID := c.Param("id")
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	old, err := h.journalService.DeleteManualJournal(c.Request.Context(), tenantID, journalID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to delete manual journal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"oldManualJournal": dto.ToManualJournalResponse(old)})
}

// deleteManualJournals godoc
// @Summary Delete manual journals in bulk
// @Description Deletes every listed journal, or none of them when any id is unknown.
// @Tags manual-journals
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param ids body dto.BulkIDsRequest true "Journal IDs"
// @Success 200 {object} dto.DeleteManualJournalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals [delete]
func (h *manualJournalHandler) deleteManualJournals(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var req dto.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	old, err := h.journalService.DeleteManualJournals(c.Request.Context(), tenantID, req.IDs, userID)
	if err != nil {
		respondWithError(c, err, "Failed to delete manual journals")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteManualJournalsResponse{OldManualJournals: dto.ToManualJournalResponses(old)})
}

// publishManualJournal godoc
// @Summary Publish a manual journal
// @Tags manual-journals
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param id path string true "Manual journal ID"
// @Success 200 {object} dto.ManualJournalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already published"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals/{id}/publish [post]
func (h *manualJournalHandler) publishManualJournal(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	journalID := c.Param("id")
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	journal, err := h.journalService.PublishManualJournal(c.Request.Context(), tenantID, journalID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to publish manual journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToManualJournalResponse(journal))
}

// publishManualJournals godoc
// @Summary Publish manual journals in bulk
// @Description Publishes the drafts among the listed journals; already published ones are counted and skipped.
// @Tags manual-journals
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param ids body dto.BulkIDsRequest true "Journal IDs"
// @Success 200 {object} domain.BulkPublishResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals/publish [post]
func (h *manualJournalHandler) publishManualJournals(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var req dto.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	result, err := h.journalService.PublishManualJournals(c.Request.Context(), tenantID, req.IDs, userID)
	if err != nil {
		respondWithError(c, err, "Failed to publish manual journals")
		return
	}
	c.JSON(http.StatusOK, result)
}

// listManualJournals godoc
// @Summary List manual journals
// @Tags manual-journals
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(12)
// @Param column_sort_by query string false "Sort column (date, journal_number, amount, created_at, published_at)"
// @Param sort_order query string false "asc or desc"
// @Param search_keyword query string false "Matches number, reference or description"
// @Param status query string false "draft or published"
// @Success 200 {object} dto.ListManualJournalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals [get]
func (h *manualJournalHandler) listManualJournals(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var params dto.ListManualJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	resp, err := h.journalService.ListManualJournals(c.Request.Context(), tenantID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list manual journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getManualJournal godoc
// @Summary Get a manual journal
// @Description Returns the journal with its entries, posted ledger transactions and attachments.
// @Tags manual-journals
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param id path string true "Manual journal ID"
// @Success 200 {object} dto.ManualJournalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals/{id} [get]
func (h *manualJournalHandler) getManualJournal(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	journalID := c.Param("id")

	journal, err := h.journalService.GetManualJournal(c.Request.Context(), tenantID, journalID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve manual journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToManualJournalResponse(journal))
}

// revertManualJournals godoc
// @Summary Revert manual journals from the ledger
// @Description Removes the posted ledger lines of the journals and undoes their balance effects.
// @Tags manual-journals
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param ids body dto.BulkIDsRequest true "Journal IDs"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals/revert [post]
func (h *manualJournalHandler) revertManualJournals(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var req dto.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	if err := h.postingService.RevertJournalEntries(c.Request.Context(), tenantID, req.IDs); err != nil {
		respondWithError(c, err, "Failed to revert manual journals")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Manual journals reverted", slog.Int("count", len(req.IDs)))
	c.Status(http.StatusNoContent)
}

// postManualJournals godoc
// @Summary Post manual journals to the ledger
// @Description Writes ledger lines for the published journals among ids. With override, previously posted lines are replaced.
// @Tags manual-journals
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param request body dto.PostManualJournalsRequest true "Journal IDs and override flag"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/manual-journals/post [post]
func (h *manualJournalHandler) postManualJournals(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var req dto.PostManualJournalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	if err := h.postingService.PostManualJournals(c.Request.Context(), tenantID, req.IDs, req.Override); err != nil {
		respondWithError(c, err, "Failed to post manual journals")
		return
	}
	c.Status(http.StatusNoContent)
}

// registerManualJournalRoutes registers manual journal routes under a tenant group.
// Static segments are registered before /:id so they are not captured by it.
func registerManualJournalRoutes(tenant *gin.RouterGroup, journalService portssvc.ManualJournalSvcFacade, postingService portssvc.JournalPostingSvc) {
	h := newManualJournalHandler(journalService, postingService)

	journals := tenant.Group("/manual-journals")
	{
		journals.POST("", h.createManualJournal)
		journals.GET("", h.listManualJournals)
		journals.DELETE("", h.deleteManualJournals)
		journals.POST("/publish", h.publishManualJournals)
		journals.POST("/revert", h.revertManualJournals)
		journals.POST("/post", h.postManualJournals)
		journals.GET("/:id", h.getManualJournal)
		journals.POST("/:id", h.editManualJournal)
		journals.DELETE("/:id", h.deleteManualJournal)
		journals.POST("/:id/publish", h.publishManualJournal)
	}
}
