package client

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"trading-dashboard/internal/metrics"
)

// Client is a thin JSON client for the dashboard server, used by dashctl.
type Client struct {
	client *resty.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
// Username/password may be empty for read-only use; status writes and the
// trade table need them.
func New(baseURL, username, password string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	if username != "" || password != "" {
		c.SetBasicAuth(username, password)
	}
	return &Client{client: c}
}

type statusBody struct {
	Status string `json:"status"`
}

// Status returns the current auto-trade status.
func (c *Client) Status() (string, error) {
	var body statusBody
	resp, err := c.client.R().SetResult(&body).Get("/api/status")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to get status: %s", resp.Status())
	}
	return body.Status, nil
}

// SetStatus writes the auto-trade status. Requires credentials.
func (c *Client) SetStatus(status string) error {
	resp, err := c.client.R().
		SetBody(statusBody{Status: status}).
		Put("/api/status")
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to set status: %s", resp.Status())
	}
	return nil
}

// Report holds the aggregate metrics as served by /api/metrics. NoData is
// set when the server has no usable transactions.
type Report struct {
	metrics.Report
	NoData bool `json:"no_data"`
}

// Metrics fetches the aggregate report.
func (c *Client) Metrics() (*Report, error) {
	var report Report
	resp, err := c.client.R().SetResult(&report).Get("/api/metrics")
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to get metrics: %s", resp.Status())
	}
	return &report, nil
}

// Trades fetches the sorted detail table. Requires credentials.
func (c *Client) Trades() ([]metrics.TradeRow, error) {
	var rows []metrics.TradeRow
	resp, err := c.client.R().SetResult(&rows).Get("/api/trades")
	if err != nil {
		return nil, fmt.Errorf("failed to get trades: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to get trades: %s", resp.Status())
	}
	return rows, nil
}
