package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"niyam/internal/domain"
	"niyam/internal/engine"
	"niyam/internal/taxid"
	"niyam/internal/validate"
)

// AssessHandler handles the full per-transaction pipeline and
// standalone validation endpoints.
type AssessHandler struct {
	engine *engine.Engine
}

// NewAssessHandler creates a new AssessHandler.
func NewAssessHandler(eng *engine.Engine) *AssessHandler {
	return &AssessHandler{engine: eng}
}

// Assess handles POST /api/v1/transactions/assess
// @Summary Assess a transaction
// @Description Run the full pipeline: validation, reverse-charge detection, tax split, credit evaluation, and return classification
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body domain.Transaction true "Transaction"
// @Success 200 {object} APIResponse{data=domain.Assessment} "Assessment"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /transactions/assess [post]
func (h *AssessHandler) Assess(c *gin.Context) {
	var tx domain.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	assessment, err := h.engine.Assess(tx)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, assessment)
}

// ValidateTransaction handles POST /api/v1/transactions/validate
// @Summary Validate a transaction
// @Description Run every validation rule over a transaction and return the full report
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body domain.Transaction true "Transaction"
// @Success 200 {object} APIResponse{data=validate.Report} "Validation report"
// @Failure 400 {object} APIResponse "Malformed request body"
// @Router /transactions/validate [post]
func (h *AssessHandler) ValidateTransaction(c *gin.Context) {
	var tx domain.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, validate.Run(&tx))
}

// ValidateGSTIN handles GET /api/v1/validate/gstin/:gstin
// @Summary Validate a GSTIN
// @Description Check a GSTIN against the statutory 15-character format
// @Tags validate
// @Produce json
// @Param gstin path string true "GSTIN"
// @Success 200 {object} APIResponse "Validity verdict"
// @Router /validate/gstin/{gstin} [get]
func (h *AssessHandler) ValidateGSTIN(c *gin.Context) {
	gstin := c.Param("gstin")
	if err := taxid.ValidateGSTIN(gstin); err != nil {
		RespondOK(c, gin.H{"gstin": gstin, "valid": false, "reason": err.Error()})
		return
	}
	RespondOK(c, gin.H{
		"gstin":      gstin,
		"valid":      true,
		"state_code": taxid.StateCodeOf(gstin),
		"state":      taxid.StateNames[taxid.StateCodeOf(gstin)],
		"pan":        taxid.PANOf(gstin),
	})
}
