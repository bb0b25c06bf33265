package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hraxis/hr-backend-go/internal/handler/http/middleware"
	"github.com/hraxis/hr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth     *AuthHandler
	Employee *EmployeeHandler
	Salary   *SalaryHandler
	Payroll  *PayrollHandler
	Leave    *LeaveHandler
}

func NewRouter(logger *slog.Logger, jwtService *jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.With(middleware.StaffOnly).Post("/auth/register", h.Auth.Register)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", h.Employee.Get)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)

					r.Route("/{id}/salary", func(r chi.Router) {
						r.Get("/", h.Salary.GetComponents)
						r.Put("/", h.Salary.SetComponents)
						r.Get("/revisions", h.Salary.ListRevisions)
						r.Post("/revisions", h.Salary.ApplyRevision)
					})
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.StaffOnly)
				r.Get("/", h.Payroll.List)
				r.Post("/", h.Payroll.Create)
				r.Get("/{id}", h.Payroll.Get)
				r.Put("/{id}", h.Payroll.Update)
				r.Get("/{id}/payslip", h.Payroll.Payslip)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Submit)
				r.Get("/{id}", h.Leave.Get)
				r.Get("/balance/{employeeID}", h.Leave.GetBalance)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
					r.Post("/accrual/run", h.Leave.RunAccrual)
				})
			})
		})
	})

	return r
}
