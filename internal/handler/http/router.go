package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/facehr/facehr-backend-go/internal/handler/http/middleware"
	"github.com/facehr/facehr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	payrollHandler PayrollHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "facehr-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/structure/{employeeId}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetStructure)
					r.Put("/", payrollHandler.UpsertStructure)
				})

				r.Route("/generate", func(r chi.Router) {
					r.Post("/", payrollHandler.GeneratePayroll)
					r.Post("/{employeeId}", payrollHandler.GenerateEmployeePayroll)
				})

				r.Route("/preview", func(r chi.Router) {
					r.Post("/", payrollHandler.PreviewDemo)
					r.Post("/{employeeId}", payrollHandler.PreviewEmployeePayroll)
				})

				r.Route("/records", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayrollRecords)
					r.Get("/{employeeId}", payrollHandler.GetEmployeePayrollRecord)
				})

				r.Get("/summary", payrollHandler.GetPayrollSummary)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/logs", attendanceHandler.ListLogs)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", dashboardHandler.GetStats)
			})
		})
	})
	return r
}
