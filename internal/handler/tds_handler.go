package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"niyam/internal/domain"
	"niyam/internal/tds"
)

// TDSHandler handles withholding-tax endpoints.
type TDSHandler struct{}

// NewTDSHandler creates a new TDSHandler.
func NewTDSHandler() *TDSHandler {
	return &TDSHandler{}
}

// deductionsRequest is the deduction computation request body.
type deductionsRequest struct {
	Deductions []domain.TDSDeduction `json:"deductions"`
}

// deductionsResponse carries computed deductions and the cumulative
// threshold statuses they imply.
type deductionsResponse struct {
	Deductions []domain.TDSDeduction    `json:"deductions"`
	Thresholds []domain.ThresholdStatus `json:"thresholds"`
	Findings   []domain.Finding         `json:"findings,omitempty"`
}

// Deductions handles POST /api/v1/tds/deductions
// @Summary Compute deductions
// @Description Fill TDS amounts for a batch of deductions and flag crossed section thresholds
// @Tags tds
// @Accept json
// @Produce json
// @Param request body deductionsRequest true "Deduction records"
// @Success 200 {object} APIResponse{data=deductionsResponse} "Computed deductions with threshold flags"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /tds/deductions [post]
func (h *TDSHandler) Deductions(c *gin.Context) {
	var req deductionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	computed := make([]domain.TDSDeduction, 0, len(req.Deductions))
	for _, d := range req.Deductions {
		out, err := tds.Compute(d)
		if err != nil {
			HandleError(c, err)
			return
		}
		computed = append(computed, out)
	}

	statuses, err := tds.ThresholdStatuses(computed)
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := deductionsResponse{Deductions: computed, Thresholds: statuses}
	for _, s := range statuses {
		if s.Exceeded {
			resp.Findings = append(resp.Findings, domain.Finding{
				Code:     domain.FindingTDSThresholdCrossed,
				Severity: domain.FindingWarning,
				Message:  "cumulative payments to " + s.VendorPAN + " under " + string(s.Section) + " exceed the section threshold for " + s.FinancialYear,
			})
		}
	}
	RespondOK(c, resp)
}

// quarterRequest is the certificate/return request body.
type quarterRequest struct {
	TAN           string                `json:"tan"`
	FinancialYear string                `json:"financial_year"`
	Quarter       int                   `json:"quarter"`
	Deductions    []domain.TDSDeduction `json:"deductions"`
}

// Certificates handles POST /api/v1/tds/certificates
// @Summary Issue quarterly certificates
// @Description Aggregate a quarter's deductions into one Form 16A-shaped certificate per vendor
// @Tags tds
// @Accept json
// @Produce json
// @Param request body quarterRequest true "Deductor, period, and deductions"
// @Success 200 {object} APIResponse{data=[]domain.TDSCertificate} "Certificates"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /tds/certificates [post]
func (h *TDSHandler) Certificates(c *gin.Context) {
	var req quarterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	agg, err := tds.NewAggregator(req.TAN)
	if err != nil {
		HandleError(c, err)
		return
	}
	certs, err := agg.Certificates(req.FinancialYear, req.Quarter, req.Deductions)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, certs)
}

// QuarterlyReturn handles POST /api/v1/tds/returns
// @Summary Assemble a quarterly statement
// @Description Aggregate a quarter's deductions into the deductor's statement with late-deposit charges
// @Tags tds
// @Accept json
// @Produce json
// @Param request body quarterRequest true "Deductor, period, and deductions"
// @Success 200 {object} APIResponse{data=domain.TDSReturn} "Quarterly statement"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /tds/returns [post]
func (h *TDSHandler) QuarterlyReturn(c *gin.Context) {
	var req quarterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	agg, err := tds.NewAggregator(req.TAN)
	if err != nil {
		HandleError(c, err)
		return
	}
	ret, err := agg.QuarterlyReturn(req.FinancialYear, req.Quarter, req.Deductions)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ret)
}
