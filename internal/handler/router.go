package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"camphq/platform/internal/config"
	"camphq/platform/internal/handler/middleware"
	"camphq/platform/internal/model"
	jwtpkg "camphq/platform/pkg/jwt"
)

type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Athlete    *AthleteHandler
	Camp       *CampHandler
	Pickup     *PickupHandler
	Waiver     *WaiverHandler
	Curriculum *CurriculumHandler
	Lms        *LmsHandler
	Venue      *VenueHandler
	Licensee   *LicenseeHandler
	Shop       *ShopHandler
	Upload     *UploadHandler
	Export     *ExportHandler
}

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	h Handlers,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)
		public.POST("/auth/refresh", h.Auth.Refresh)

		// Licensee application intake
		public.POST("/licensee-applications", h.Licensee.SubmitApplication)

		// Storefront: browse and build a cart without an account
		public.GET("/shop/products", h.Shop.ListProducts)
		public.GET("/shop/products/:id", h.Shop.GetProduct)
		public.POST("/shop/carts", h.Shop.CreateCart)
		public.GET("/shop/carts/:cartID", h.Shop.GetCart)
		public.PUT("/shop/carts/:cartID/items", h.Shop.SetCartItem)
		public.DELETE("/shop/carts/:cartID", h.Shop.ClearCart)

		// Gate scanner preview; read-only
		public.POST("/pickup/validate", h.Pickup.Validate)
	}

	// Authenticated routes
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtManager))
	{
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/users/me", h.Auth.Me)

		// Athletes: parents manage their own
		protected.POST("/athletes", h.Athlete.Create)
		protected.GET("/athletes/mine", h.Athlete.ListMine)
		protected.GET("/athletes/:id", h.Athlete.Get)
		protected.PUT("/athletes/:id", h.Athlete.Update)
		protected.DELETE("/athletes/:id", h.Athlete.Delete)

		// Camp registration
		protected.POST("/registrations", h.Athlete.RegisterForCamp)
		protected.GET("/registrations/mine", h.Athlete.ListMyRegistrations)

		// Waiver signing
		protected.POST("/waivers/sign", h.Waiver.Sign)

		// Coach training progress
		protected.GET("/lms/modules", h.Lms.ListModules)
		protected.POST("/lms/progress", h.Lms.RecordProgress)
		protected.GET("/lms/summary", h.Lms.Summary)
	}

	// Staff routes
	staff := r.Group("/api/v1")
	staff.Use(middleware.JWTAuth(jwtManager))
	staff.Use(middleware.RoleAuth(model.RoleCoach, model.RoleLicenseeOwner, model.RoleAdmin))
	{
		staff.GET("/athletes", h.Athlete.List)
		staff.PUT("/registrations/:id/status", h.Athlete.UpdateRegistrationStatus)

		// Camps and camp days
		staff.POST("/camps", h.Camp.Create)
		staff.GET("/camps", h.Camp.List)
		staff.GET("/camps/:id", h.Camp.Get)
		staff.PUT("/camps/:id", h.Camp.Update)
		staff.DELETE("/camps/:id", h.Camp.Delete)
		staff.POST("/camps/:id/days", h.Camp.AddDay)
		staff.GET("/camps/:id/days", h.Camp.ListDays)

		// Attendance
		staff.POST("/camp-days/:dayID/check-in", h.Camp.CheckIn)
		staff.GET("/camp-days/:dayID/roster", h.Camp.Roster)
		staff.POST("/camp-days/:dayID/manual-checkout", h.Pickup.ManualCheckout)

		// Pickup tokens
		staff.POST("/camp-days/:dayID/pickup-tokens", h.Pickup.GenerateForDay)
		staff.POST("/camp-days/:dayID/pickup-tokens/athlete", h.Pickup.GenerateForAthlete)
		staff.GET("/camp-days/:dayID/pickup-tokens", h.Pickup.ListForDay)
		staff.POST("/pickup/use", h.Pickup.Use)

		// Curriculum
		staff.POST("/curriculum/templates", h.Curriculum.CreateTemplate)
		staff.GET("/curriculum/templates", h.Curriculum.ListTemplates)
		staff.GET("/curriculum/templates/:id", h.Curriculum.GetTemplate)
		staff.PUT("/curriculum/templates/:id", h.Curriculum.UpdateTemplate)
		staff.DELETE("/curriculum/templates/:id", h.Curriculum.DeleteTemplate)
		staff.POST("/curriculum/templates/:id/blocks", h.Curriculum.AddBlock)
		staff.GET("/curriculum/templates/:id/blocks", h.Curriculum.ListBlocks)
		staff.PUT("/curriculum/blocks/:blockID", h.Curriculum.UpdateBlock)
		staff.DELETE("/curriculum/blocks/:blockID", h.Curriculum.DeleteBlock)

		// Venues
		staff.POST("/venues", h.Venue.Create)
		staff.GET("/venues", h.Venue.List)
		staff.GET("/venues/:id", h.Venue.Get)
		staff.PUT("/venues/:id", h.Venue.Update)
		staff.DELETE("/venues/:id", h.Venue.Delete)

		// Waiver templates and standing
		staff.POST("/waivers/templates", h.Waiver.CreateTemplate)
		staff.GET("/waivers/templates", h.Waiver.ListTemplates)
		staff.GET("/waivers/templates/:id", h.Waiver.GetTemplate)
		staff.PUT("/waivers/templates/:id", h.Waiver.UpdateTemplate)
		staff.DELETE("/waivers/templates/:id", h.Waiver.DeleteTemplate)
		staff.GET("/waivers/templates/:id/camp-status", h.Waiver.CampStatus)

		// Direct-to-storage uploads
		staff.POST("/uploads/presign", h.Upload.Presign)
	}

	// Admin routes
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuth(jwtManager))
	admin.Use(middleware.RoleAuth(model.RoleAdmin))
	{
		admin.POST("/users", h.User.Create)
		admin.GET("/users", h.User.List)
		admin.GET("/users/:id", h.User.Get)
		admin.PUT("/users/:id", h.User.Update)
		admin.POST("/users/:id/disable", h.User.Disable)
		admin.POST("/users/:id/enable", h.User.Enable)

		admin.POST("/territories", h.Licensee.CreateTerritory)
		admin.GET("/territories", h.Licensee.ListTerritories)
		admin.DELETE("/territories/:id", h.Licensee.DeleteTerritory)

		admin.GET("/licensees", h.Licensee.ListLicensees)
		admin.GET("/licensees/:id", h.Licensee.GetLicensee)

		admin.GET("/licensee-applications", h.Licensee.ListApplications)
		admin.GET("/licensee-applications/:id", h.Licensee.GetApplication)
		admin.PUT("/licensee-applications/:id/review", h.Licensee.ReviewApplication)

		admin.POST("/shop/products", h.Shop.CreateProduct)
		admin.PUT("/shop/products/:id", h.Shop.UpdateProduct)
		admin.DELETE("/shop/products/:id", h.Shop.DeleteProduct)
		admin.POST("/shop/products/:id/variants", h.Shop.AddVariant)
		admin.PUT("/shop/variants/:variantID", h.Shop.UpdateVariant)
		admin.DELETE("/shop/variants/:variantID", h.Shop.DeleteVariant)

		admin.POST("/lms/modules", h.Lms.CreateModule)
		admin.PUT("/lms/modules/:id", h.Lms.UpdateModule)
		admin.DELETE("/lms/modules/:id", h.Lms.DeleteModule)

		admin.GET("/exports/:type", h.Export.Export)
	}

	return r
}
