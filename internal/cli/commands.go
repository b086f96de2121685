package cli

import (
	"github.com/spf13/cobra"
)

// NewHealthCmd создаёт команду проверки статуса API.
func NewHealthCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := clientFn().CheckHealth()
			if err != nil {
				return err
			}

			outputFn().Health(health)
			return nil
		},
	}
}

// NewListCmd создаёт команду получения последних предсказаний.
func NewListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Get recent predictions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			predictions, err := clientFn().ListPredictions()
			if err != nil {
				return err
			}

			outputFn().Predictions(predictions)
			return nil
		},
	}
}

// NewPredictCmd создаёт команду нового предсказания.
func NewPredictCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var features string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Make a new prediction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Разбор признаков до любого сетевого вызова.
			vector, err := ParseFeatures(features)
			if err != nil {
				return err
			}

			prediction, err := clientFn().Predict(vector)
			if err != nil {
				return err
			}

			outputFn().Prediction(prediction)
			return nil
		},
	}

	cmd.Flags().StringVar(&features, "features", "", "Features as comma-separated values (required)")
	cmd.MarkFlagRequired("features")

	return cmd
}

// NewMetricsCmd создаёт команду получения метрик API.
func NewMetricsCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show API metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := clientFn().GetMetrics()
			if err != nil {
				return err
			}

			outputFn().Metrics(metrics)
			return nil
		},
	}
}
