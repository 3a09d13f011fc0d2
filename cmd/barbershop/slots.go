package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberShop/internal/availability"
	"github.com/m04kA/SMC-BarberShop/internal/config"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/catalog"
	shopRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/shop"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberShop/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/metrics"
)

var (
	slotsDate      string
	slotsServiceID int64
	slotsExclude   int64
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print available start times for a service on a date",
	Long: `Print available start times, one HH:MM per line, using the same rules as the API.

Examples:
  barbershop slots --date 2026-10-20 --service 3
  barbershop slots --date 2026-10-20 --service 3 --exclude 7`,
	RunE: runSlots,
}

func init() {
	slotsCmd.Flags().StringVar(&slotsDate, "date", "", "Date in YYYY-MM-DD format")
	slotsCmd.Flags().Int64Var(&slotsServiceID, "service", 0, "Service ID")
	slotsCmd.Flags().Int64Var(&slotsExclude, "exclude", 0, "Appointment ID to ignore (when editing it)")
	_ = slotsCmd.MarkFlagRequired("date")
	_ = slotsCmd.MarkFlagRequired("service")
}

func runSlots(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// В stdout только слоты, логи уходят в stderr
	log, err := logger.NewWithWriter(os.Stderr, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	date, err := time.Parse(domain.DateFormat, slotsDate)
	if err != nil {
		return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", slotsDate)
	}

	location, err := cfg.Shop.Location()
	if err != nil {
		return err
	}
	defaults, err := shopDefaults(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stopCh := make(chan struct{})
	defer close(stopCh)

	db, err := openDatabase(ctx, cfg, log, nil, stopCh)
	if err != nil {
		return err
	}
	defer db.Close()

	loader := availability.NewLoader(
		shopRepo.NewRepository(db),
		catalogRepo.NewRepository(db),
		appointmentRepo.NewRepository(db),
		defaults.BusinessHours,
	)
	// Метрики в CLI не публикуются, nil коллектор ничего не пишет
	var noMetrics *metrics.Metrics
	useCase := getAvailableSlotsUC.NewUseCase(
		loader,
		&getAvailableSlotsUC.RealTimeProvider{Location: location},
		noMetrics,
		log,
		"cli",
	)

	req := &getAvailableSlotsUC.Request{
		Date:      date,
		ServiceID: slotsServiceID,
	}
	if slotsExclude > 0 {
		req.ExcludeAppointmentID = &slotsExclude
	}

	result, err := useCase.Execute(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, slot := range result.Slots {
		fmt.Fprintln(out, slot.String())
	}
	return nil
}
