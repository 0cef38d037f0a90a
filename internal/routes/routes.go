package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/healthguide/healthguide-api/internal/audit"
	"github.com/healthguide/healthguide-api/internal/config"
	domainappointment "github.com/healthguide/healthguide-api/internal/domain/appointment"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/handlers"
	infraRepo "github.com/healthguide/healthguide-api/internal/infra/repository"
	"github.com/healthguide/healthguide-api/internal/middleware"
	"github.com/healthguide/healthguide-api/internal/token"
	ucAdmin "github.com/healthguide/healthguide-api/internal/usecase/admin"
	ucAppointment "github.com/healthguide/healthguide-api/internal/usecase/appointment"
	ucAuth "github.com/healthguide/healthguide-api/internal/usecase/auth"
	ucProfile "github.com/healthguide/healthguide-api/internal/usecase/profile"
	"github.com/healthguide/healthguide-api/internal/validators"
)

// Dependencies are the collaborators the route table is built from.
type Dependencies struct {
	Users        domainuser.Repository
	Appointments domainappointment.Repository
	Tokens       *token.Manager
	Config       *config.Config
	Log          logrus.FieldLogger
}

// RegisterRoutes wires the gorm repositories and mounts the API on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) {
	Mount(r, Dependencies{
		Users:        infraRepo.NewUserGormRepository(db),
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		Tokens:       token.NewManager(cfg.JWTSecret, cfg.JWTRefreshSecret),
		Config:       cfg,
		Log:          log,
	})
}

func Mount(r *gin.Engine, deps Dependencies) {
	validators.Register()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins))

	auditLogger := audit.New(deps.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	signupUC := ucAuth.NewSignup(deps.Users, deps.Tokens, auditLogger)
	loginUC := ucAuth.NewLogin(deps.Users, deps.Tokens, auditLogger)
	refreshUC := ucAuth.NewRefresh(deps.Users, deps.Tokens, auditLogger)

	getMeUC := ucProfile.NewGetMe(deps.Users)
	updateMeUC := ucProfile.NewUpdateMe(deps.Users, auditLogger)

	createDoctorUC := ucAdmin.NewCreateDoctor(deps.Users, auditLogger)
	getStatsUC := ucAdmin.NewGetStats(deps.Users, deps.Appointments)

	createAppointmentUC := ucAppointment.NewCreateAppointment(deps.Appointments, deps.Users, auditLogger)
	listDoctorAppointmentsUC := ucAppointment.NewListDoctorAppointments(deps.Appointments)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC, refreshUC, deps.Config.IsProduction(), deps.Log)
	meHandler := handlers.NewMeHandler(getMeUC, updateMeUC, deps.Log)
	adminHandler := handlers.NewAdminHandler(createDoctorUC, getStatsUC, deps.Log)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, listDoctorAppointmentsUC, deps.Log)

	authenticated := middleware.AuthMiddleware(deps.Tokens)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authenticated, meHandler.GetMe)
		auth.PATCH("/me", authenticated, meHandler.UpdateMe)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(authenticated, middleware.RequireRole(domainuser.RoleAdmin))
		{
			admin.POST("/doctors", adminHandler.CreateDoctor)
			admin.GET("/stats", adminHandler.Stats)
		}

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		appointments := api.Group("/appointments")
		appointments.Use(authenticated)
		{
			appointments.POST("", middleware.RequireRole(domainuser.RoleUser), appointmentHandler.Create)
			appointments.GET("/doctor", middleware.RequireRole(domainuser.RoleDoctor), appointmentHandler.ListForDoctor)
		}
	}
}
