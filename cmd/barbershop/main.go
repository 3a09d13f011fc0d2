package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "barbershop",
	Short: "Barbershop booking service",
	Long:  "Barbershop booking and CRM backend: appointments, clients, services and WhatsApp reminders.",
	// Ошибки печатает main, usage только для неверных флагов
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Path to TOML config file")
	rootCmd.AddCommand(serveCmd, slotsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
