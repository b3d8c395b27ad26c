package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, controllers *Controllers) {
	router.Get("/", controllers.Schedule.List)
	router.Get("/{scheduleID}", controllers.Schedule.FindByID)
}

func attachHistoryRoutes(router chi.Router, controllers *Controllers) {
	router.Get("/", controllers.History.List)
	router.Get("/{historyID}", controllers.History.FindByID)
}

func attachFlowStepRoutes(router chi.Router, controllers *Controllers) {
	router.Get("/", controllers.FlowStep.ListActive)
}

func attachMessageRoutes(router chi.Router, controllers *Controllers) {
	router.Post("/", controllers.Message.Create)
}

func attachPendingCallRoutes(router chi.Router, controllers *Controllers) {
	router.Patch("/{callID}/resolve", controllers.PendingCall.Resolve)
}

func attachNotificationRoutes(router chi.Router, controllers *Controllers) {
	router.Post("/run", controllers.Notification.Run)
	router.Post("/manual", controllers.Notification.SendManual)
}
