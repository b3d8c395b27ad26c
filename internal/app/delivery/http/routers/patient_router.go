package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, controllers *Controllers) {
	router.Post("/", controllers.Patient.Create)
	router.Get("/{patientID}", controllers.Patient.FindByID)
	router.Get("/{patientID}/contracts", controllers.Billing.FindContractsByPatient)
}
