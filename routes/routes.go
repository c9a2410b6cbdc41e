package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziada-travel/controllers/blog"
	"ziada-travel/controllers/inquiry"
	"ziada-travel/controllers/pages"
	"ziada-travel/controllers/server"
	"ziada-travel/logger"
	"ziada-travel/middleware"
	emailService "ziada-travel/services/email"
	inquiryService "ziada-travel/services/inquiry"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) error {
	asyncLogger := logger.NewAsyncLogger(db)

	emailCfg := emailService.LoadConfig()
	dispatcher, err := emailService.NewDispatcher(emailCfg)
	if err != nil {
		// A misconfigured provider is a deploy mistake; refuse to serve with
		// notifications silently broken.
		return fmt.Errorf("building email dispatcher: %w", err)
	}

	pagesController := pages.NewPagesController(db, asyncLogger)
	inquiryController := inquiry.NewInquiryController(db, inquiryService.NewService(db, dispatcher), asyncLogger)
	blogController := blog.NewBlogController(db, asyncLogger)
	serverController := server.NewServerController(emailCfg.SiteURL)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLog(asyncLogger))

	/*=============================================================================
	| Catalog Pages
	===============================================================================*/
	app.Get("/", pagesController.Home)
	app.Get("/packages/", pagesController.Packages)
	app.Get("/package/:slug/", pagesController.PackageDetail)
	app.Get("/hotels/", pagesController.Hotels)
	app.Get("/hotel/:slug/", pagesController.HotelDetail)
	app.Get("/destinations/", pagesController.Destinations)
	app.Get("/about/", pagesController.About)

	/*=============================================================================
	| Inquiry Forms
	===============================================================================*/
	app.Get("/contact/", inquiryController.ContactForm)
	app.Post("/contact/", inquiryController.SubmitContact)
	app.Get("/corporates/", inquiryController.CorporateForm)
	app.Post("/corporates/", inquiryController.SubmitCorporate)
	app.Get("/quote/package/", inquiryController.QuoteForm)
	app.Post("/quote/package/", inquiryController.SubmitQuote)
	app.Post("/mice/", inquiryController.SubmitMICE)
	app.Post("/student-travel/", inquiryController.SubmitStudentTravel)
	app.Post("/ngo-travel/", inquiryController.SubmitNGOTravel)
	app.Get("/inquiry-success/", inquiryController.Success)

	/*=============================================================================
	| Blog
	===============================================================================*/
	app.Get("/blog/", blogController.List)
	app.Get("/blog/search/", blogController.Search)
	app.Get("/blog/rss/", serverController.RSS)
	app.Get("/blog/sitemap/", serverController.Sitemap)
	app.Get("/blog/category/:slug/", blogController.Category)
	app.Get("/blog/post/:slug/", blogController.Detail)
	app.Get("/blog/p/:pid/", blogController.Redirect)

	/*=============================================================================
	| Operational
	===============================================================================*/
	app.Get("/healthz", serverController.Healthz)

	// Unmatched routes fall through to the shared 404 page.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return nil
}
