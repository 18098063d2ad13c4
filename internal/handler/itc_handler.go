package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"niyam/internal/domain"
	"niyam/internal/itc"
)

// ITCHandler handles input-tax-credit endpoints.
type ITCHandler struct{}

// NewITCHandler creates a new ITCHandler.
func NewITCHandler() *ITCHandler {
	return &ITCHandler{}
}

// Evaluate handles POST /api/v1/itc/evaluate
// @Summary Evaluate credit eligibility
// @Description Split a transaction's tax into eligible, blocked, and reversal-required credit
// @Tags itc
// @Accept json
// @Produce json
// @Param request body itc.Input true "Vendor flags and line items"
// @Success 200 {object} APIResponse{data=domain.ITCEligibility} "Eligibility split"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /itc/evaluate [post]
func (h *ITCHandler) Evaluate(c *gin.Context) {
	var input itc.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := itc.Evaluate(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// registerRequest is the credit-register request body.
type registerRequest struct {
	Opening itc.HeadBalances   `json:"opening"`
	Periods []itc.PeriodCredit `json:"periods"`
	Claim   *itc.HeadBalances  `json:"claim,omitempty"`
}

// registerResponse pairs a built register with any claim findings.
type registerResponse struct {
	Register itc.Register     `json:"register"`
	Findings []domain.Finding `json:"findings,omitempty"`
}

// Register handles POST /api/v1/itc/register
// @Summary Build a credit register
// @Description Aggregate historical credit movements into per-head balances, optionally checking a claim against them
// @Tags itc
// @Accept json
// @Produce json
// @Param request body registerRequest true "Opening balance and period movements"
// @Success 200 {object} APIResponse{data=registerResponse} "Register with claim findings"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /itc/register [post]
func (h *ITCHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	reg, err := itc.BuildRegister(req.Opening, req.Periods)
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := registerResponse{Register: reg}
	if req.Claim != nil {
		resp.Findings = itc.CheckClaim(reg, *req.Claim)
	}
	RespondOK(c, resp)
}

// setOffRequest is the set-off planning request body.
type setOffRequest struct {
	Liability itc.HeadBalances `json:"liability"`
	Available itc.HeadBalances `json:"available"`
}

// SetOff handles POST /api/v1/itc/setoff
// @Summary Plan credit set-off
// @Description Apply available credit to liability in the statutory utilization order
// @Tags itc
// @Accept json
// @Produce json
// @Param request body setOffRequest true "Liability and available credit per head"
// @Success 200 {object} APIResponse{data=itc.SetOffPlan} "Utilization plan"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /itc/setoff [post]
func (h *ITCHandler) SetOff(c *gin.Context) {
	var req setOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	plan, err := itc.ApplySetOff(req.Liability, req.Available)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, plan)
}
