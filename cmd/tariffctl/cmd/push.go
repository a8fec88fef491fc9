package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spedire/rate-service/internal/domain/model"
)

var pushCmd = &cobra.Command{
	Use:   "push <tariffs.json>",
	Short: "Upload a tariff file to a running service",
	Long: `Validate a tariff JSON file locally, then upload it to a running
rate-service instance with PUT /api/tariffs. The service re-validates and
atomically replaces the active table; in-flight quotes finish against the
previous snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

var (
	pushURL       string
	pushCreatedBy string
	pushTimeout   time.Duration
)

func init() {
	pushCmd.Flags().StringVar(&pushURL, "url", "http://localhost:8080", "Base URL of the rate service")
	pushCmd.Flags().StringVar(&pushCreatedBy, "created-by", "", "Operator name recorded with the new table version")
	pushCmd.Flags().DurationVar(&pushTimeout, "timeout", 30*time.Second, "Upload timeout")
}

func runPush(cmd *cobra.Command, args []string) error {
	// Fail fast on files the service would reject anyway.
	if _, err := loadTariffFile(args[0]); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var records []model.TariffRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	payload, err := json.Marshal(struct {
		Records   []model.TariffRecord `json:"records"`
		CreatedBy string               `json:"created_by,omitempty"`
	}{Records: records, CreatedBy: pushCreatedBy})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, pushURL+"/api/tariffs", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("uploading to %s: %w", pushURL, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service rejected the upload (%s): %s", resp.Status, bytes.TrimSpace(body))
	}

	var result struct {
		Data struct {
			Version int64    `json:"version"`
			Entries int      `json:"entries"`
			Regions []string `json:"regions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("unexpected response: %w", err)
	}

	cmd.Printf("Installed tariff table version %d: %d entries, %d regions\n",
		result.Data.Version, result.Data.Entries, len(result.Data.Regions))
	return nil
}
