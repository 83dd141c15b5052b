package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/db"
	"github.com/jiftek/website/internal/handler"
)

// Options configure the engine beyond its service dependencies.
type Options struct {
	SessionSecret string
	UploadDir     string
	UploadURLPath string
}

// Setup configures the Gin engine and all routes.
func Setup(api *handler.API, opts Options) *gin.Engine {
	r := gin.Default()

	secret := opts.SessionSecret
	if secret == "" {
		secret = "jiftek-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("jiftek_session", store))

	if opts.UploadDir != "" && opts.UploadURLPath != "" {
		r.Static(opts.UploadURLPath, opts.UploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public read-only API consumed by the front end.
	public := r.Group("/api")
	{
		public.GET("/pages/:slug", api.GetPublicPage)
		public.GET("/services", api.GetPublicServices)
		public.GET("/services/:slug", api.GetPublicService)
		public.GET("/solutions", api.GetPublicSolutions)
		public.GET("/solutions/:slug", api.GetPublicSolution)
		public.GET("/insights", api.GetPublicInsights)
		public.GET("/insights/:slug", api.GetPublicInsight)
		public.GET("/team", api.GetPublicTeam)
		public.GET("/team/:slug", api.GetPublicTeamMember)
		public.GET("/testimonials", api.GetPublicTestimonials)
		public.GET("/case-studies", api.GetPublicCaseStudies)
		public.GET("/case-studies/:slug", api.GetPublicCaseStudy)
		public.GET("/partners", api.GetPublicPartners)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.POST("/logout", api.Logout)
			auth.GET("/me", api.Me)

			content := auth.Group("/api", api.RequirePermission(db.PermContentManage))
			{
				content.GET("/services", api.GetServices)
				content.POST("/services", api.CreateService)
				content.PUT("/services/:id", api.UpdateService)
				content.DELETE("/services/:id", api.DeleteService)

				content.GET("/solutions", api.GetSolutions)
				content.POST("/solutions", api.CreateSolution)
				content.PUT("/solutions/:id", api.UpdateSolution)
				content.DELETE("/solutions/:id", api.DeleteSolution)

				content.GET("/insights", api.GetInsights)
				content.GET("/insights/:id", api.GetInsight)
				content.POST("/insights", api.CreateInsight)
				content.PUT("/insights/:id", api.UpdateInsight)
				content.DELETE("/insights/:id", api.DeleteInsight)

				content.GET("/team", api.GetTeamMembers)
				content.POST("/team", api.CreateTeamMember)
				content.PUT("/team/:id", api.UpdateTeamMember)
				content.DELETE("/team/:id", api.DeleteTeamMember)

				content.GET("/testimonials", api.GetTestimonials)
				content.POST("/testimonials", api.CreateTestimonial)
				content.PUT("/testimonials/:id", api.UpdateTestimonial)
				content.DELETE("/testimonials/:id", api.DeleteTestimonial)

				content.GET("/case-studies", api.GetCaseStudies)
				content.POST("/case-studies", api.CreateCaseStudy)
				content.PUT("/case-studies/:id", api.UpdateCaseStudy)
				content.DELETE("/case-studies/:id", api.DeleteCaseStudy)

				content.GET("/partners", api.GetPartners)
				content.POST("/partners", api.CreatePartner)
				content.PUT("/partners/:id", api.UpdatePartner)
				content.DELETE("/partners/:id", api.DeletePartner)

				content.POST("/uploads", api.UploadImage)
			}

			pages := auth.Group("/api/pages", api.RequirePermission(db.PermPageManage))
			{
				pages.GET("/:slug", api.GetPageAdmin)
				pages.PUT("/:slug", api.UpdatePageMeta)
				pages.PUT("/:slug/sections/:key", api.UpsertSection)
				pages.PUT("/:slug/sections-order", api.ReorderSections)
			}

			users := auth.Group("/api/users", api.RequirePermission(db.PermUserManage))
			{
				users.GET("", api.GetUsers)
				users.PUT("/:id/roles", api.AssignUserRoles)
			}
		}
	}

	return r
}
