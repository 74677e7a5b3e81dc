package app

import (
	"net/http"
	"tasknotes/internal/app/deps"
	"tasknotes/internal/app/services"
	"tasknotes/internal/http/handlers/identity"
	acknowledgedone "tasknotes/internal/http/handlers/reminders/acknowledge_done"
	activereminders "tasknotes/internal/http/handlers/reminders/active_reminders"
	createreminder "tasknotes/internal/http/handlers/reminders/create_reminder"
	deletereminder "tasknotes/internal/http/handlers/reminders/delete_reminder"
	dismissreminder "tasknotes/internal/http/handlers/reminders/dismiss_reminder"
	listtaskreminders "tasknotes/internal/http/handlers/reminders/list_task_reminders"
	reminderevents "tasknotes/internal/http/handlers/reminders/reminder_events"
	toggledone "tasknotes/internal/http/handlers/reminders/toggle_done"
	upcomingreminders "tasknotes/internal/http/handlers/reminders/upcoming_reminders"
	upsertreminder "tasknotes/internal/http/handlers/reminders/upsert_reminder"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reminderRouter := chi.NewRouter()
	reminderRouter.Use(identity.SetUserIDToContext)
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	reminderRouter.Method(http.MethodPut, "/", upsertreminder.New(s.UpsertReminder))
	reminderRouter.Method(http.MethodGet, "/", listtaskreminders.New(s.ListTaskReminders))
	reminderRouter.Method(http.MethodGet, "/active", activereminders.New(s.ActiveReminders))
	reminderRouter.Method(http.MethodGet, "/upcoming", upcomingreminders.New(s.UpcomingReminders))
	reminderRouter.Method(http.MethodGet, "/events", reminderevents.New(deps.Logger, deps.Broadcaster))
	reminderRouter.Method(http.MethodDelete, "/{reminderID:[0-9]+}", deletereminder.New(s.DeleteReminder))
	reminderRouter.Method(http.MethodPost, "/{reminderID:[0-9]+}/dismiss", dismissreminder.New(s.DismissReminder))
	reminderRouter.Method(http.MethodPost, "/{reminderID:[0-9]+}/done", acknowledgedone.New(s.AcknowledgeDone))
	reminderRouter.Method(http.MethodPost, "/{reminderID:[0-9]+}/toggle", toggledone.New(s.ToggleDone))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api/v1/reminders", reminderRouter)

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.BindAddress,
	}
}
