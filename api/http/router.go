package http

import (
	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	profile *handlers.ProfileHandler,
	skills *handlers.SkillsHandler,
	careers *handlers.CareerHandler,
	predictions *handlers.PredictionHandler,
	courses *handlers.CoursesHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// The skill catalog is public: the registration flow renders it before
	// the user has a token.
	v1.Get("/skills/catalog", skills.Catalog)

	p := v1.Group("/profile", authMW)
	p.Get("/", profile.Get)
	p.Put("/", profile.Update)

	sk := v1.Group("/skills", authMW)
	sk.Get("/", skills.Get)
	sk.Put("/", skills.Save)

	cr := v1.Group("/careers", authMW)
	cr.Get("/", careers.List)
	cr.Get("/:role", careers.Profile)
	cr.Get("/:role/gap", careers.Gap)
	cr.Get("/:role/courses", courses.Recommended)

	pr := v1.Group("/predictions", authMW)
	pr.Post("/", predictions.Analyze)
	pr.Get("/", predictions.History)
	pr.Get("/latest", predictions.Latest)

	v1.Post("/courses/:id/enroll", authMW, courses.Enroll)

	my := v1.Group("/my", authMW)
	my.Get("/courses", courses.My)
	my.Post("/courses/:id/complete", courses.Complete)
}
