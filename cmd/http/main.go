package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicstack-service/internal/app/config"
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/delivery/http/routers"
	"clinicstack-service/internal/app/drivers/database"
	"clinicstack-service/internal/app/drivers/logger"
	driverMessaging "clinicstack-service/internal/app/drivers/messaging"
	driverStorage "clinicstack-service/internal/app/drivers/storage"
	"clinicstack-service/internal/app/services/core/appointments"
	"clinicstack-service/internal/app/services/core/auth"
	"clinicstack-service/internal/app/services/core/availability"
	"clinicstack-service/internal/app/services/core/booking"
	"clinicstack-service/internal/app/services/core/doctors"
	"clinicstack-service/internal/app/services/core/documents"
	"clinicstack-service/internal/app/services/core/inventory"
	"clinicstack-service/internal/app/services/core/invoices"
	"clinicstack-service/internal/app/services/core/patients"
	"clinicstack-service/internal/app/services/core/prescriptions"
	"clinicstack-service/internal/app/services/core/reports"
	"clinicstack-service/internal/app/services/core/schedules"
	"clinicstack-service/internal/app/services/core/taxes"
	"clinicstack-service/internal/app/services/core/tenants"
	"clinicstack-service/internal/app/services/core/users"
	sharedMessaging "clinicstack-service/internal/app/services/shared/messaging"
	sharedRedis "clinicstack-service/internal/app/services/shared/redis"
	sharedStorage "clinicstack-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	database.EnsureIndexes(mongoDB, driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := driverMessaging.NewRabbitMQ(driverConfig)
	minioClient := driverStorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	notificationPublisher := sharedMessaging.NewRabbitMQNotificationPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueue,
	)
	storageRepository := sharedStorage.NewMinioStorageRepository(
		bootstrap.Minio,
		bootstrap.DriverConfig.Minio.BucketName,
	)

	// Repositories
	tenantMongoRepository := tenants.NewTenantMongoRepository(bootstrap.MongoDB, dbName)
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	inventoryMongoRepository := inventory.NewInventoryMongoRepository(bootstrap.MongoDB, dbName)
	invoiceMongoRepository := invoices.NewInvoiceMongoRepository(bootstrap.MongoDB, dbName)
	taxConfigMongoRepository := taxes.NewTaxConfigMongoRepository(bootstrap.MongoDB, dbName)
	reportMongoRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName)
	documentMongoRepository := documents.NewPatientDocumentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	tenantUsecase := tenants.NewTenantUsecase(tenantMongoRepository, redisRepository, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleMongoRepository, doctorMongoRepository, redisRepository, bootstrap.Logger)
	availabilityUsecase := availability.NewAvailabilityUsecase(scheduleMongoRepository, appointmentMongoRepository, redisRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		scheduleMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		notificationPublisher,
		bootstrap.Logger,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionMongoRepository,
		patientMongoRepository,
		inventoryMongoRepository,
		bootstrap.Logger,
	)
	inventoryUsecase := inventory.NewInventoryUsecase(inventoryMongoRepository, bootstrap.Logger)
	invoiceUsecase := invoices.NewInvoiceUsecase(
		invoiceMongoRepository,
		patientMongoRepository,
		taxConfigMongoRepository,
		bootstrap.Logger,
	)
	taxConfigUsecase := taxes.NewTaxConfigUsecase(taxConfigMongoRepository, bootstrap.Logger)
	reportUsecase := reports.NewReportUsecase(reportMongoRepository, bootstrap.Logger)
	documentUsecase := documents.NewDocumentUsecase(
		documentMongoRepository,
		patientMongoRepository,
		storageRepository,
		bootstrap.InternalConfig.App.PresignedURLExpiryInHours,
		bootstrap.Logger,
	)
	bookingUsecase := booking.NewBookingUsecase(
		doctorMongoRepository,
		scheduleMongoRepository,
		patientMongoRepository,
		availabilityUsecase,
		appointmentUsecase,
		bootstrap.Logger,
	)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Controllers
	controllers := &routers.Controllers{
		Auth:         auth.NewAuthController(bootstrap.Logger, authUsecase),
		Patient:      patients.NewPatientController(bootstrap.Logger, patientUsecase),
		Doctor:       doctors.NewDoctorController(bootstrap.Logger, doctorUsecase),
		Schedule:     schedules.NewScheduleController(bootstrap.Logger, scheduleUsecase),
		Availability: availability.NewAvailabilityController(bootstrap.Logger, availabilityUsecase),
		Appointment:  appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase),
		Prescription: prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase),
		Inventory:    inventory.NewInventoryController(bootstrap.Logger, inventoryUsecase),
		Invoice:      invoices.NewInvoiceController(bootstrap.Logger, invoiceUsecase),
		Tax:          taxes.NewTaxConfigController(bootstrap.Logger, taxConfigUsecase),
		Report:       reports.NewReportController(bootstrap.Logger, reportUsecase),
		Document:     documents.NewDocumentController(bootstrap.Logger, documentUsecase, bootstrap.InternalConfig),
		Booking:      booking.NewBookingController(bootstrap.Logger, tenantUsecase, bookingUsecase),
	}

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, controllers)
}
