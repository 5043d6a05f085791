package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
	"project/backend/session"
	"project/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, st *store.Store, sess *session.Session, cfg *config.Config) {
	// Public catalog
	catalogController := controllers.NewCatalogController(st, sess)
	app.Get("/api/settings", catalogController.GetSiteSettings)
	app.Get("/api/courses", catalogController.GetCourses)
	app.Get("/api/courses/:id", catalogController.GetCourseDetails)
	app.Get("/api/partners", catalogController.GetPartners)
	app.Get("/api/portfolio", catalogController.GetPortfolio)

	// Public forms
	formsController := controllers.NewFormsController(st)
	app.Post("/api/courses/:id/enroll", formsController.Enroll)
	app.Post("/api/courses/:id/brochure", formsController.RequestBrochure)

	// Navigation and language
	sessionController := controllers.NewSessionController(sess)
	app.Get("/api/session", sessionController.GetSession)
	app.Post("/api/session/view", sessionController.Navigate)
	app.Post("/api/session/language/toggle", sessionController.ToggleLanguage)
	app.Post("/api/session/login-error/clear", sessionController.ClearLoginError)

	// Admin
	adminController := controllers.NewAdminController(st, sess, cfg)
	app.Post("/api/admin/login", adminController.Login)

	adminMiddleware := middleware.AdminMiddleware(cfg, sess)
	admin := app.Group("/api/admin", adminMiddleware)
	admin.Post("/logout", adminController.Logout)

	admin.Get("/courses", adminController.GetCourses)
	admin.Post("/courses", adminController.CreateCourse)
	admin.Put("/courses/:id", adminController.UpdateCourse)
	admin.Delete("/courses/:id", adminController.DeleteCourse)

	admin.Post("/partners", adminController.CreatePartner)
	admin.Put("/partners/:id", adminController.UpdatePartner)
	admin.Delete("/partners/:id", adminController.DeletePartner)

	admin.Post("/portfolio", adminController.CreatePortfolioProject)
	admin.Put("/portfolio/:id", adminController.UpdatePortfolioProject)
	admin.Delete("/portfolio/:id", adminController.DeletePortfolioProject)

	admin.Get("/settings", adminController.GetSiteSettings)
	admin.Put("/settings", adminController.ReplaceSiteSettings)

	admin.Get("/enrollments", adminController.GetEnrollments)
	admin.Put("/enrollments/:id/status", adminController.UpdateEnrollmentStatus)
	admin.Get("/brochure-requests", adminController.GetBrochureRequests)
}
