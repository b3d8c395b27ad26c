package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachContractRoutes(router chi.Router, controllers *Controllers) {
	router.Post("/", controllers.Billing.CreateContract)
	router.Get("/{contractID}", controllers.Billing.FindContractByID)
	router.Get("/{contractID}/installments", controllers.Billing.FindInstallmentsByContract)
}

func attachInstallmentRoutes(router chi.Router, controllers *Controllers) {
	router.Post("/", controllers.Billing.CreateInstallment)
	router.Patch("/{installmentID}/received", controllers.Billing.MarkInstallmentReceived)
}
