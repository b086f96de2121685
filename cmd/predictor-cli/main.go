// Predictor CLI — инструмент командной строки для работы
// с prediction API через HTTP.
//
// Использование:
//
//	predictor [--url URL] [--json] <command> [flags]
//
// Команды:
//
//	health   Проверка статуса API
//	list     Последние предсказания
//	predict  Новое предсказание по вектору признаков
//	metrics  Метрики API
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Predictor/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "predictor",
		Short:         "Predictor CLI — prediction API client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewHealthCmd(clientFn, outputFn),
		cli.NewListCmd(clientFn, outputFn),
		cli.NewPredictCmd(clientFn, outputFn),
		cli.NewMetricsCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
