package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"niyam/internal/domain"
	"niyam/internal/recon"
)

// ReconHandler handles reconciliation endpoints.
type ReconHandler struct{}

// NewReconHandler creates a new ReconHandler.
func NewReconHandler() *ReconHandler {
	return &ReconHandler{}
}

// matchRequest is the single-pair match request body.
type matchRequest struct {
	Purchase     domain.ReconRecord `json:"purchase"`
	Counterparty domain.ReconRecord `json:"counterparty"`
}

// Match handles POST /api/v1/recon/match
// @Summary Match one record pair
// @Description Score a purchase record against its counterparty-reported record
// @Tags recon
// @Accept json
// @Produce json
// @Param request body matchRequest true "Record pair"
// @Success 200 {object} APIResponse{data=domain.ReconciliationMatch} "Match score and discrepancies"
// @Failure 400 {object} APIResponse "Malformed request body"
// @Router /recon/match [post]
func (h *ReconHandler) Match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, recon.Match(req.Purchase, req.Counterparty))
}

// batchRequest is the batch reconciliation request body.
type batchRequest struct {
	Purchases    []domain.ReconRecord `json:"purchases"`
	Counterparty []domain.ReconRecord `json:"counterparty"`
}

// Batch handles POST /api/v1/recon/batch
// @Summary Reconcile a batch
// @Description Partition purchase and counterparty record sets into matched, missing, and additional
// @Tags recon
// @Accept json
// @Produce json
// @Param request body batchRequest true "Purchase and counterparty record sets"
// @Success 200 {object} APIResponse{data=domain.ReconBatchResult} "Batch partition with summary"
// @Failure 400 {object} APIResponse "Malformed request body"
// @Router /recon/batch [post]
func (h *ReconHandler) Batch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, recon.ReconcileBatch(req.Purchases, req.Counterparty))
}
