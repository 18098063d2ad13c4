package router

import (
	"github.com/gin-gonic/gin"

	"niyam/internal/config"
	"niyam/internal/handler"
	"niyam/internal/middleware"
)

// Handlers groups the handler set the router wires up.
type Handlers struct {
	Assess  *handler.AssessHandler
	Tax     *handler.TaxHandler
	ITC     *handler.ITCHandler
	Returns *handler.ReturnsHandler
	Recon   *handler.ReconHandler
	TDS     *handler.TDSHandler
	Health  *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("/assess", h.Assess.Assess)
	transactions.POST("/validate", h.Assess.ValidateTransaction)

	v1.GET("/validate/gstin/:gstin", h.Assess.ValidateGSTIN)

	v1.POST("/tax/calculate", h.Tax.Calculate)
	v1.POST("/rcm/detect", h.Tax.DetectRCM)

	itcGroup := v1.Group("/itc")
	itcGroup.POST("/evaluate", h.ITC.Evaluate)
	itcGroup.POST("/register", h.ITC.Register)
	itcGroup.POST("/setoff", h.ITC.SetOff)

	returnsGroup := v1.Group("/returns")
	returnsGroup.POST("/classify", h.Returns.Classify)
	returnsGroup.POST("/gstr1", h.Returns.BuildGSTR1)
	returnsGroup.POST("/gstr3b", h.Returns.BuildGSTR3B)

	reconGroup := v1.Group("/recon")
	reconGroup.POST("/match", h.Recon.Match)
	reconGroup.POST("/batch", h.Recon.Batch)

	tdsGroup := v1.Group("/tds")
	tdsGroup.POST("/deductions", h.TDS.Deductions)
	tdsGroup.POST("/certificates", h.TDS.Certificates)
	tdsGroup.POST("/returns", h.TDS.QuarterlyReturn)

	return r
}
