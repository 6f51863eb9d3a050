package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paylane/payroll-backend-go/internal/config"
	"github.com/paylane/payroll-backend-go/internal/domain/user"
	"github.com/paylane/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paylane/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payslipHandler PayslipHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {

				// Finance/admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireFinance)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/options", employeeHandler.Options)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
					r.Post("/{id}/allowances", employeeHandler.OpenAllowance)
					r.Post("/{id}/deductions", employeeHandler.OpenDeduction)
					r.Put("/{id}/allowances/{recordId}/end", employeeHandler.EndAllowance)
					r.Put("/{id}/deductions/{recordId}/end", employeeHandler.EndDeduction)
				})

				// Self-access enforced in the service layer
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{id}/allowances", employeeHandler.ListAllowances)
				r.Get("/{id}/deductions", employeeHandler.ListDeductions)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.With(middleware.RequireFinance).Post("/generate/{employeeId}", payslipHandler.Generate)
				r.Get("/", payslipHandler.List)
				r.Get("/{id}", payslipHandler.GetByID)
				r.Get("/{id}/view", payslipHandler.View)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/monthly", analyticsHandler.Monthly)
				r.Get("/departments", analyticsHandler.Departments)
				r.Get("/summary", analyticsHandler.Summary)
			})
		})
	})
	return r
}
