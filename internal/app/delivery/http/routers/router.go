package routers

import (
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/delivery/http/middlewares"
	"debtflow-service/internal/app/services/core/billing"
	"debtflow-service/internal/app/services/core/clinics"
	"debtflow-service/internal/app/services/core/flowsteps"
	"debtflow-service/internal/app/services/core/histories"
	"debtflow-service/internal/app/services/core/messages"
	"debtflow-service/internal/app/services/core/patients"
	"debtflow-service/internal/app/services/core/pendingcalls"
	"debtflow-service/internal/app/services/core/reports"
	"debtflow-service/internal/app/services/core/schedules"
	"debtflow-service/internal/app/services/notification"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Clinic       *clinics.ClinicController
	Patient      *patients.PatientController
	Billing      *billing.BillingController
	Schedule     *schedules.ScheduleController
	History      *histories.HistoryController
	FlowStep     *flowsteps.FlowStepController
	Message      *messages.MessageController
	PendingCall  *pendingcalls.PendingCallController
	Report       *reports.ReportController
	Notification *notification.NotificationController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.APIKeyAuth)

			r.Route("/clinics", func(r chi.Router) {
				attachClinicRoutes(r, controllers)
			})
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, controllers)
			})
			r.Route("/contracts", func(r chi.Router) {
				attachContractRoutes(r, controllers)
			})
			r.Route("/installments", func(r chi.Router) {
				attachInstallmentRoutes(r, controllers)
			})
			r.Route("/schedules", func(r chi.Router) {
				attachScheduleRoutes(r, controllers)
			})
			r.Route("/histories", func(r chi.Router) {
				attachHistoryRoutes(r, controllers)
			})
			r.Route("/flow-steps", func(r chi.Router) {
				attachFlowStepRoutes(r, controllers)
			})
			r.Route("/messages", func(r chi.Router) {
				attachMessageRoutes(r, controllers)
			})
			r.Route("/pending-calls", func(r chi.Router) {
				attachPendingCallRoutes(r, controllers)
			})
			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, controllers)
			})
		})
	})
}
