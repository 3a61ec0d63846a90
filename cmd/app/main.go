package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zapshift/cmd"
	zapshifthttp "zapshift/internal/adapters/in/http"
	"zapshift/internal/adapters/out/firebaseauth"
	"zapshift/internal/adapters/out/postgres/parcelrepo"
	"zapshift/internal/adapters/out/postgres/paymentrepo"
	"zapshift/internal/adapters/out/postgres/riderrepo"
	"zapshift/internal/adapters/out/postgres/userrepo"
	"zapshift/internal/adapters/out/stripecheckout"
	"zapshift/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	verifier, err := firebaseauth.NewVerifier(context.Background(), configs.FirebaseServiceKeyBase64)
	if err != nil {
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	gateway := stripecheckout.NewGateway(configs.StripeSecretKey, configs.PaymentCurrency, configs.SiteDomain)

	app := cmd.NewCompositionRoot(configs, gormDB, gateway)

	jobManager := jobs.NewJobManager(
		app.CreateGetInconsistenciesQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, verifier, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		StripeSecretKey:          goDotEnvVariable("STRIPE_SECRET_KEY"),
		PaymentCurrency:          goDotEnvVariable("PAYMENT_CURRENCY"),
		SiteDomain:               goDotEnvVariable("SITE_DOMAIN"),
		FirebaseServiceKeyBase64: goDotEnvVariable("FB_SERVICE_KEY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode,
	)

	// TranslateError folds driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, verifier *firebaseauth.Verifier, port string) {
	e := echo.New()

	server := zapshifthttp.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateSetUserRoleCommandHandler(),
		app.CreateCreateRiderCommandHandler(),
		app.CreateSetRiderApprovalCommandHandler(),
		app.CreateRemoveRiderCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateAssignRiderCommandHandler(),
		app.CreateRemoveParcelCommandHandler(),
		app.CreateInitiateCheckoutCommandHandler(),
		app.CreateReconcilePaymentCommandHandler(),
		app.CreateListUsersQueryHandler(),
		app.CreateGetUserQueryHandler(),
		app.CreateGetUserRoleQueryHandler(),
		app.CreateListRidersQueryHandler(),
		app.CreateListParcelsQueryHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateListPaymentsQueryHandler(),
		app.CreateGetInconsistenciesQueryHandler(),
	)

	auth := zapshifthttp.NewAuthMiddleware(verifier, app.CreateGetUserRoleQueryHandler())
	server.RegisterRoutes(e, auth)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			e.Logger.Info("Shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
