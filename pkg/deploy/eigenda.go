package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// EigenDAClient submits contract metadata blobs to an EigenDA disperser
// proxy. Dispersal runs after deployment confirmation and is strictly
// best-effort: failures never fail a deployment.
type EigenDAClient struct {
	endpoint string
	http     *http.Client
}

// NewEigenDAClient creates a client for a disperser proxy endpoint.
func NewEigenDAClient(endpoint string, timeout time.Duration) *EigenDAClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &EigenDAClient{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// MetadataBlob is the payload dispersed for one deployment.
type MetadataBlob struct {
	ContractName string           `json:"contract_name"`
	Network      string           `json:"network"`
	Address      string           `json:"address"`
	TxHash       string           `json:"tx_hash"`
	ABI          []map[string]any `json:"abi"`
	SourceCode   string           `json:"source_code,omitempty"`
	DeployedAt   time.Time        `json:"deployed_at"`
}

// Disperse submits the blob and returns the DA commitment.
func (c *EigenDAClient) Disperse(ctx context.Context, blob MetadataBlob) (string, error) {
	payload, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata blob: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/put?commitment_mode=standard", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build disperser request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("disperser request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("failed to read disperser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("disperser returned %d: %s", resp.StatusCode, string(body))
	}

	// The proxy returns the commitment bytes; hex-encode for storage.
	return fmt.Sprintf("0x%x", body), nil
}

// DisperseInBackground runs Disperse on its own goroutine and hands the
// commitment to onDone when it arrives. Errors are logged and swallowed.
func (c *EigenDAClient) DisperseInBackground(blob MetadataBlob, timeout time.Duration, onDone func(commitment string)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		commitment, err := c.Disperse(ctx, blob)
		if err != nil {
			slog.Warn("EigenDA dispersal failed; deployment is unaffected",
				"contract", blob.ContractName, "network", blob.Network, "error", err)
			return
		}
		slog.Info("EigenDA metadata blob dispersed",
			"contract", blob.ContractName, "commitment", commitment)
		if onDone != nil {
			onDone(commitment)
		}
	}()
}
