package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/collections"
	"github.com/alarafrental/collections/internal/config"
	httpapi "github.com/alarafrental/collections/internal/interfaces/http"
	"github.com/alarafrental/collections/internal/lifecycle"
	"github.com/alarafrental/collections/internal/repository"
	"github.com/alarafrental/collections/internal/words"
	"github.com/alarafrental/collections/pkg/database"
	"github.com/alarafrental/collections/pkg/utils"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting legal collections service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	contractRepo := repository.NewContractRepository(db.DB, logger)
	invoiceRepo := repository.NewInvoiceRepository(db.DB, logger)
	violationRepo := repository.NewViolationRepository(db.DB, logger)
	caseRepo := repository.NewCaseRepository(db.DB, logger)

	amountWords := func(amount decimal.Decimal) string {
		return words.AmountInWords(amount, cfg.Company.CurrencyEn)
	}

	aggregator := collections.NewAggregator(
		contractRepo,
		invoiceRepo,
		violationRepo,
		amountWords,
		nil,
		logger,
	)
	composer := collections.NewComposer(collections.CompanyInfo{
		Name:      cfg.Company.Name,
		LegalForm: cfg.Company.LegalForm,
		Address:   cfg.Company.Address,
		CRNumber:  cfg.Company.CRNumber,
		Phone:     cfg.Company.Phone,
		Email:     cfg.Company.Email,
		Signatory: cfg.Company.Signatory,
		Currency:  cfg.Company.CurrencyEn,
	}, collections.NewReferenceGenerator(cfg.Company.OrgCode), nil)
	generator := collections.NewGenerator(aggregator, composer, amountWords, nil, logger)

	controller := lifecycle.NewController(contractRepo, caseRepo, logger)

	server := httpapi.NewServer(httpapi.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ArchiveName:  cfg.Generation.ArchiveName,
	}, generator, controller, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
