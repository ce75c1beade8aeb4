package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pgnest/internal/config"
	"pgnest/internal/database"
	"pgnest/internal/middleware"
	"pgnest/internal/modules/auth"
	"pgnest/internal/modules/billing"
	"pgnest/internal/modules/checkout"
	"pgnest/internal/modules/complaint"
	"pgnest/internal/modules/credentials"
	"pgnest/internal/modules/notification"
	"pgnest/internal/modules/occupancy"
	"pgnest/internal/modules/registration"
	jwtsvc "pgnest/internal/pkg/jwt"
	"pgnest/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(db, j)
	authHandler := auth.NewHandler(authService)

	notifService := notification.NewService(notifRepo, notification.LogSender{})
	notifHandler := notification.NewHandler(notifService)

	ledger := occupancy.NewLedger(db)
	occupancyHandler := occupancy.NewHandler(ledger, roomRepo)

	issuer := credentials.NewIssuer(counterRepo)

	registrationService := registration.NewService(db, ledger, issuer, notifService)
	registrationHandler := registration.NewHandler(registrationService, tenantRepo)

	billingService := billing.NewService(tenantRepo, paymentRepo, roomRepo)
	billingHandler := billing.NewHandler(billingService)

	checkoutService := checkout.NewService(db, ledger, issuer, notifService)
	checkoutHandler := checkout.NewHandler(checkoutService, archiveRepo)

	complaintService := complaint.NewService(complaintRepo, notifService)
	complaintHandler := complaint.NewHandler(complaintService)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		registrationHandler.RegisterPublicRoutes(v1)

		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			resident := authed.Group("/")
			resident.Use(middleware.RequireRole("resident"))
			{
				checkoutHandler.RegisterResidentRoutes(resident)
				complaintHandler.RegisterResidentRoutes(resident)
				notifHandler.RegisterRoutes(resident)
			}

			admin := authed.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				registrationHandler.RegisterAdminRoutes(admin)
				occupancyHandler.RegisterRoutes(admin)
				billingHandler.RegisterRoutes(admin)
				checkoutHandler.RegisterAdminRoutes(admin)
				complaintHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logrus.WithField("addr", cfg.HTTPAddr).Info("starting pgnest API")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.Fatal(err)
	}
}
