package v1

import (
	"time"

	"interview-marketplace-backend/config"
	"interview-marketplace-backend/internal/delivery/http/middleware"
	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/internal/usecase"
	"interview-marketplace-backend/pkg/auth"
	"interview-marketplace-backend/pkg/validation"
	"interview-marketplace-backend/pkg/ws"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	InterviewUC    domain.InterviewUsecase
	AvailabilityUC domain.AvailabilityUsecase
	FeedbackUC     domain.FeedbackUsecase
	ProfileUC      domain.ProfileUsecase
	HealthUC       usecase.HealthUsecase
	Hub            *ws.Hub
	KeySet         *auth.KeySet
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.KeySet, deps.Config))
	protected.Use(middleware.CSRFMiddleware(gin.Mode() == gin.ReleaseMode))
	write := middleware.RateLimitMiddleware(middleware.WriteRateLimitConfig(deps.Config.RateLimitWriteThreshold, window))
	{
		NewSystemHandler(v1, protected, deps.HealthUC, deps.Hub)
		NewInterviewHandler(v1, protected, write, deps.InterviewUC)
		NewAvailabilityHandler(protected, write, deps.AvailabilityUC)
		NewFeedbackHandler(protected, write, deps.FeedbackUC)
		NewProfileHandler(protected, write, deps.ProfileUC)
	}

	return r
}
