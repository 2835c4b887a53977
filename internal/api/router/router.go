package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/carbazaar/admin-gateway/internal/api/handlers"
	"github.com/carbazaar/admin-gateway/internal/middleware"
	"github.com/carbazaar/admin-gateway/internal/models"
	"github.com/carbazaar/admin-gateway/internal/panel"
)

type Router struct {
	app            *fiber.App
	authHandler    *handlers.AuthHandler
	panelHandler   *handlers.PanelHandler
	carsHandler    *handlers.CarsHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

func NewRouter(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	panelHandler *handlers.PanelHandler,
	carsHandler *handlers.CarsHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		app:            app,
		authHandler:    authHandler,
		panelHandler:   panelHandler,
		carsHandler:    carsHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

func (r *Router) SetupRoutes() {
	loginLimit := r.rateLimiter.RateLimit(middleware.RateLimitConfig{
		Enabled: true,
		Limit:   5,
		Window:  time.Minute,
	})

	// Public routes
	r.app.Post("/admin/login", loginLimit, r.authHandler.Login)

	// Protected routes
	admin := r.app.Group("/admin", r.authMiddleware.Authenticate())
	admin.Post("/send-otp", loginLimit, r.authHandler.SendOTP)
	admin.Post("/verify-otp", loginLimit, r.authHandler.VerifyOTP)
	admin.Get("/session", r.authHandler.Session)
	admin.Post("/logout", r.authHandler.Logout)
	admin.Get("/audit", r.panelHandler.AuditTrail)
	admin.Get("/cars/:id/test-drives", r.panelHandler.CarTestDrives)

	panels := admin.Group("/panels")

	// Literal and car-specific routes are registered before the generic
	// panel routes so they take precedence over "/:id" and the generic
	// create/update handlers.
	cars := panels.Group("/cars")
	cars.Post("/", r.carsHandler.Create)
	cars.Patch("/:id", r.carsHandler.Update)
	cars.Get("/:id/form", r.carsHandler.EditForm)
	handlers.RegisterPanelRoutes(r.panelHandler, cars, "cars", nil,
		func(s *panel.Set) *panel.Controller[models.Car] { return s.Cars })

	faqs := panels.Group("/faqs")
	faqs.Get("/categories", r.panelHandler.FAQCategories)
	handlers.RegisterPanelRoutes(r.panelHandler, faqs, "faqs",
		[]string{"question", "answer", "category"},
		func(s *panel.Set) *panel.Controller[models.FAQ] { return s.FAQs })

	testDrives := panels.Group("/test-drives")
	testDrives.Get("/slots", r.panelHandler.TestDriveSlots)
	handlers.RegisterPanelRoutes(r.panelHandler, testDrives, "test-drives",
		[]string{"car_id", "customerName", "customerPhone", "date", "time_slot"},
		func(s *panel.Set) *panel.Controller[models.TestDriveBooking] { return s.TestDrives })

	users := panels.Group("/users")
	users.Get("/:id/recent-car-views", r.panelHandler.UserRecentCarViews)
	handlers.RegisterPanelRoutes(r.panelHandler, users, "users",
		[]string{"name", "email"},
		func(s *panel.Set) *panel.Controller[models.AdminUser] { return s.Users })

	handlers.RegisterPanelRoutes(r.panelHandler, panels.Group("/reviews"), "reviews",
		[]string{"reviewer_name", "rating", "review_text"},
		func(s *panel.Set) *panel.Controller[models.Review] { return s.Reviews })

	handlers.RegisterPanelRoutes(r.panelHandler, panels.Group("/testimonials"), "testimonials",
		[]string{"fullName", "message"},
		func(s *panel.Set) *panel.Controller[models.Testimonial] { return s.Testimonials })

	handlers.RegisterPanelRoutes(r.panelHandler, panels.Group("/love-stories"), "love-stories",
		[]string{"title", "description"},
		func(s *panel.Set) *panel.Controller[models.LoveStory] { return s.LoveStories })

	handlers.RegisterPanelRoutes(r.panelHandler, panels.Group("/sell-cars"), "sell-cars",
		[]string{"brand", "model", "seller"},
		func(s *panel.Set) *panel.Controller[models.SellCarRequest] { return s.SellCars })

	handlers.RegisterPanelRoutes(r.panelHandler, panels.Group("/callback-requests"), "callback-requests",
		[]string{"fullName", "phoneNumber"},
		func(s *panel.Set) *panel.Controller[models.CallbackRequest] { return s.CallbackRequests })

	handlers.RegisterPanelRoutes(r.panelHandler, panels.Group("/newsletter"), "newsletter",
		[]string{"email"},
		func(s *panel.Set) *panel.Controller[models.NewsletterSubscription] { return s.Newsletter })
}
