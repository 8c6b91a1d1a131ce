package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL hosts the published spreadsheet exports
	DefaultBaseURL = "https://docs.google.com"

	// SpreadsheetID identifies the published workbook
	SpreadsheetID = "1IaTFfiPPv6SsdeEM5Ohh1emwK0JhqW6fpJKgxatYG0U"

	// BoatsGID is the sheet holding boat profiles
	BoatsGID = "0"

	// ListingsGID is the sheet holding per-date trip listings
	ListingsGID = "132070850"
)

// ErrStatus is returned when the export endpoint answers with a non-2xx status
var ErrStatus = errors.New("unexpected response status")

// Client implements Source against the spreadsheet CSV export endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the published spreadsheet
func NewClient() *Client {
	return NewClientWithConfig(DefaultBaseURL, 30*time.Second)
}

// NewClientWithConfig creates a client against baseURL.
// A zero timeout leaves requests unbounded.
func NewClientWithConfig(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ExportURL builds the CSV export URL for one sheet
func (c *Client) ExportURL(gid string) string {
	params := url.Values{}
	params.Add("format", "csv")
	params.Add("gid", gid)
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?%s", c.baseURL, SpreadsheetID, params.Encode())
}

// FetchBoatRows retrieves the boats sheet
func (c *Client) FetchBoatRows(ctx context.Context) ([][]string, error) {
	rows, err := c.fetchRows(ctx, BoatsGID)
	if err != nil {
		return nil, fmt.Errorf("fetching boats: %w", err)
	}
	return rows, nil
}

// FetchListingRows retrieves the listings sheet
func (c *Client) FetchListingRows(ctx context.Context) ([][]string, error) {
	rows, err := c.fetchRows(ctx, ListingsGID)
	if err != nil {
		return nil, fmt.Errorf("fetching listings: %w", err)
	}
	return rows, nil
}

func (c *Client) fetchRows(ctx context.Context, gid string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ExportURL(gid), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	return ParseCSV(resp.Body)
}

// ParseCSV reads every record. Rows may have differing lengths and stray
// quotes are tolerated; the sheet is edited by hand.
func ParseCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}
