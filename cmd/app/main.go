package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"labeling/cmd"
	httpin "labeling/internal/adapters/in/http"
	"labeling/internal/adapters/out/postgres/labelrepo"
	"labeling/internal/adapters/out/postgres/masterlabelrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		StagingTTL:         goDotEnvVariable("STAGING_TTL"),
		RenderWorkers:      envInt("RENDER_WORKERS"),
		DefaultLabelFormat: goDotEnvVariable("DEFAULT_LABEL_FORMAT"),
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

func envInt(key string) int {
	n, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		return 0
	}
	return n
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&labelrepo.LabelDTO{}, &masterlabelrepo.MasterLabelDTO{}); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateGenerateVolumesCommandHandler(),
		app.CreateCommitVolumesCommandHandler(),
		app.CreatePrintLabelsCommandHandler(),
		app.CreateReprintLabelCommandHandler(),
		app.CreateInvalidateLabelCommandHandler(),
		app.CreateDeleteLabelCommandHandler(),
		app.CreateClassifyVolumeCommandHandler(),
		app.CreateCreateMasterLabelCommandHandler(),
		app.CreateDeleteMasterLabelCommandHandler(),
		app.CreateInvalidateMasterLabelCommandHandler(),
		app.CreateLinkVolumesCommandHandler(),
		app.CreateUnlinkVolumesCommandHandler(),
		app.CreatePrintMasterLabelCommandHandler(),
		app.CreateGetLabelsByInvoiceQueryHandler(),
		app.CreateGetLabelByCodeQueryHandler(),
		app.CreateGetMasterLabelsQueryHandler(),
		configs.DefaultLabelFormat,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
