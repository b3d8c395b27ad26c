package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(router chi.Router, controllers *Controllers) {
	router.Post("/", controllers.Clinic.Create)
	router.Get("/", controllers.Clinic.FindAll)
	router.Get("/{clinicID}", controllers.Clinic.FindByID)
	router.Get("/{clinicID}/patients", controllers.Patient.FindByClinic)
	router.Get("/{clinicID}/messages", controllers.Message.FindByClinic)
	router.Get("/{clinicID}/pending-calls", controllers.PendingCall.FindOpenByClinic)
	router.Get("/{clinicID}/reports/contact-history", controllers.Report.ExportContactHistory)
}
