package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"niyam/internal/gst"
	"niyam/internal/rcm"
)

// TaxHandler handles tax calculation and reverse-charge detection
// endpoints.
type TaxHandler struct {
	detector *rcm.Detector
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(detector *rcm.Detector) *TaxHandler {
	return &TaxHandler{detector: detector}
}

// Calculate handles POST /api/v1/tax/calculate
// @Summary Calculate a tax split
// @Description Compute CGST/SGST/IGST/cess components and payable amounts for a taxable value
// @Tags tax
// @Accept json
// @Produce json
// @Param request body gst.Input true "Calculation input"
// @Success 200 {object} APIResponse{data=domain.TaxCalculationResult} "Tax split"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /tax/calculate [post]
func (h *TaxHandler) Calculate(c *gin.Context) {
	var input gst.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := gst.Calculate(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// DetectRCM handles POST /api/v1/rcm/detect
// @Summary Detect reverse-charge liability
// @Description Decide whether reverse charge applies to a transaction and with which subtype
// @Tags tax
// @Accept json
// @Produce json
// @Param request body rcm.Input true "Vendor, recipient, and service attributes"
// @Success 200 {object} APIResponse{data=domain.RCMDecision} "Reverse-charge decision"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /rcm/detect [post]
func (h *TaxHandler) DetectRCM(c *gin.Context) {
	var input rcm.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, h.detector.Detect(input))
}
