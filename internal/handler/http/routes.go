package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.server.RequestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/password/forgot", h.forgotPassword)
		r.Post("/api/password/reset", h.resetPassword)

		r.Get("/api/users/username/{username}", h.lookupUsername)
		r.Get("/api/portfolio/{username}", h.portfolio)
		r.Get("/api/certificates/file/{key}", h.certificateFile)

		r.Post("/api/contact", h.submitContact)
	})

	// routes requiring a verified bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.getProfile)
		r.Put("/api/user", h.updateProfile)

		r.Get("/api/skills", h.skills.list)
		r.Post("/api/skills", h.skills.create)
		r.Get("/api/skills/{id}", h.skills.get)
		r.Put("/api/skills/{id}", h.skills.update)
		r.Delete("/api/skills/{id}", h.skills.delete)

		r.Get("/api/experiences", h.experiences.list)
		r.Post("/api/experiences", h.experiences.create)
		r.Get("/api/experiences/{id}", h.experiences.get)
		r.Put("/api/experiences/{id}", h.experiences.update)
		r.Delete("/api/experiences/{id}", h.experiences.delete)

		r.Get("/api/projects", h.projects.list)
		r.Post("/api/projects", h.projects.create)
		r.Get("/api/projects/{id}", h.projects.get)
		r.Put("/api/projects/{id}", h.projects.update)
		r.Delete("/api/projects/{id}", h.projects.delete)

		r.Get("/api/certificates", h.listCertificates)
		r.Post("/api/certificates", h.uploadCertificate)
		r.Put("/api/certificates/{id}", h.updateCertificate)
		r.Delete("/api/certificates/{id}", h.deleteCertificate)

		r.Get("/api/about", h.getAbout)
		r.Put("/api/about", h.putAbout)

		r.Get("/api/contact/messages", h.listContactMessages)
		r.Delete("/api/contact/messages/{id}", h.deleteContactMessage)
	})

	return router
}
