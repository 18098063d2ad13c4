package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"niyam/internal/returns"
)

// ReturnsHandler handles return classification and assembly endpoints.
type ReturnsHandler struct{}

// NewReturnsHandler creates a new ReturnsHandler.
func NewReturnsHandler() *ReturnsHandler {
	return &ReturnsHandler{}
}

// Classify handles POST /api/v1/returns/classify
// @Summary Classify a transaction
// @Description Map a transaction's attributes to its GSTR-1 table and GSTR-3B section
// @Tags returns
// @Accept json
// @Produce json
// @Param request body returns.Input true "Classification attributes"
// @Success 200 {object} APIResponse{data=domain.ReturnClassification} "Return placement"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 422 {object} APIResponse "Computation error"
// @Router /returns/classify [post]
func (h *ReturnsHandler) Classify(c *gin.Context) {
	var input returns.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := returns.Classify(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// buildRequest is the return-assembly request body.
type buildRequest struct {
	Period  string          `json:"period"`
	Entries []returns.Entry `json:"entries"`
}

// BuildGSTR1 handles POST /api/v1/returns/gstr1
// @Summary Assemble a GSTR-1 return
// @Description Group classified transactions into the outward-supply return for a period
// @Tags returns
// @Accept json
// @Produce json
// @Param request body buildRequest true "Period and classified entries"
// @Success 200 {object} APIResponse{data=returns.GSTR1Return} "Outward return"
// @Failure 400 {object} APIResponse "Malformed request body"
// @Router /returns/gstr1 [post]
func (h *ReturnsHandler) BuildGSTR1(c *gin.Context) {
	var req buildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, returns.BuildGSTR1(req.Period, req.Entries))
}

// BuildGSTR3B handles POST /api/v1/returns/gstr3b
// @Summary Assemble a GSTR-3B return
// @Description Aggregate classified transactions into the summary return for a period
// @Tags returns
// @Accept json
// @Produce json
// @Param request body buildRequest true "Period and classified entries"
// @Success 200 {object} APIResponse{data=returns.GSTR3BReturn} "Summary return"
// @Failure 400 {object} APIResponse "Malformed request body"
// @Router /returns/gstr3b [post]
func (h *ReturnsHandler) BuildGSTR3B(c *gin.Context) {
	var req buildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, returns.BuildGSTR3B(req.Period, req.Entries))
}
