package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwdtc/bridgewater-dems/internal/http/middleware"
	"github.com/bwdtc/bridgewater-dems/internal/service"
	"github.com/bwdtc/bridgewater-dems/internal/storage"
)

// Dependencies are the collaborators the routes are built from.
type Dependencies struct {
	Store       storage.Store
	Content     service.ContentService
	Submissions service.SubmissionService
	Forms       service.FormService
	AdminToken  string
	// FormLimit guards the public form endpoints. Nil disables limiting.
	FormLimit fiber.Handler
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/health", HealthCheck(d.Store))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/content", GetDocument(d.Content))
	api.Get("/content/:section", GetSection(d.Content))
	api.Get("/donation-content", GetDonationContent(d.Content))

	limit := d.FormLimit
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}
	forms := api.Group("/forms")
	forms.Post("/seec", limit, SubmitSEEC(d.Submissions))
	forms.Get("/seec/:id", GetSEECSnapshot(d.Submissions))
	forms.Post("/contact", limit, SubmitContact(d.Forms))
	forms.Post("/volunteer", limit, SubmitVolunteer(d.Forms))

	admin := api.Group("/admin", middleware.AdminAuth(d.AdminToken))
	admin.Put("/content", PutSiteContent(d.Content))
	admin.Delete("/content", ResetSiteContent(d.Content))
	admin.Put("/content/:section", PutSection(d.Content))
	admin.Put("/donation-content", PutDonationContent(d.Content))
	admin.Delete("/donation-content", ResetDonationContent(d.Content))
	admin.Get("/recipients", GetRecipients(d.Submissions))
	admin.Put("/recipients", PutRecipients(d.Submissions))
	admin.Get("/submissions", ListSubmissions(d.Submissions))
	admin.Get("/submissions/:id", GetSubmission(d.Submissions))
}
