package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sunvolt-energy/erp-backend-go/internal/handler/http/middleware"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	policyHandler PolicyHandler,
	calendarHandler CalendarHandler,
	officeHandler OfficeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "erp-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Everything requires authentication: identity lives in an external
		// service, this engine only consumes its tokens.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/my", attendanceHandler.ListMine)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.ListMine)
				r.Get("/approvals", leaveHandler.ListApprovals)
				r.Get("/balance", leaveHandler.Balance)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", leaveHandler.Get)
					r.Post("/approve", leaveHandler.Approve)
					r.Post("/reject", leaveHandler.Reject)
					r.Post("/escalate", leaveHandler.Escalate)
				})
			})

			r.Route("/policies", func(r chi.Router) {
				r.Get("/", policyHandler.List)
				r.Get("/{department}", policyHandler.Get)

				// Master admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.MasterAdminOnly)
					r.Put("/{department}", policyHandler.Upsert)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/holidays", calendarHandler.ListHolidays)
				r.Get("/settings", calendarHandler.GetSettings)

				// Master admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.MasterAdminOnly)
					r.Post("/holidays", calendarHandler.CreateHoliday)
					r.Delete("/holidays/{id}", calendarHandler.DeleteHoliday)
					r.Put("/settings", calendarHandler.UpdateSettings)
				})
			})

			r.Route("/offices", func(r chi.Router) {
				r.Get("/", officeHandler.List)
				r.Get("/locate", officeHandler.Locate)

				// Master admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.MasterAdminOnly)
					r.Post("/", officeHandler.Create)
					r.Put("/{id}", officeHandler.Update)
					r.Delete("/{id}", officeHandler.Delete)
				})
			})
		})
	})
	return r
}
