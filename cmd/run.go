package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/node-go-pinelabs/app/pinelabs"
	"github.com/vibast-solutions/node-go-pinelabs/app/service"
	"github.com/vibast-solutions/node-go-pinelabs/app/types"
	"github.com/vibast-solutions/node-go-pinelabs/config"
)

var runInputPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the node once",
	Long:  "Execute the node for a single request read from a JSON file or stdin and print the results.",
	Run:   runOnce,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runInputPath, "input", "-", "Path to the execute request JSON, or - for stdin")
}

func runOnce(_ *cobra.Command, _ []string) {
	_, nodeService := mustCreateNodeService()

	req, err := readExecuteRequest(runInputPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read execute request")
	}
	if err := req.Validate(); err != nil {
		logrus.WithError(err).Fatal("Invalid execute request")
	}

	results, err := nodeService.Execute(context.Background(), service.ExecuteInput{
		Operation:      req.Operation,
		ContinueOnFail: req.ContinueOnFail,
		Items:          req.Items,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Execution failed")
	}

	payload := make([]map[string]any, 0, len(results))
	for _, result := range results {
		payload = append(payload, result.JSON)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&types.ExecuteResponse{Results: payload}); err != nil {
		logrus.WithError(err).Fatal("Failed to write results")
	}
}

func readExecuteRequest(path string) (*types.ExecuteRequest, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var req types.ExecuteRequest
	if err := json.NewDecoder(reader).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func newPineLabsClient(cfg *config.Config) *pinelabs.Client {
	return pinelabs.NewClient(types.Credentials{
		ClientID:     cfg.PineLabs.ClientID,
		ClientSecret: cfg.PineLabs.ClientSecret,
		Environment:  cfg.PineLabs.Environment,
	}, cfg.PineLabs.HTTPTimeout)
}
