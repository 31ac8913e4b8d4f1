package sheet

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"menuexport/internal/errors"
	"menuexport/internal/logging"
)

// Client reads menu rows from the Google Sheets API.
type Client struct {
	svc    *sheets.Service
	logger *logging.Logger
}

// NewClient builds a read-only Sheets client from a service-account key file.
func NewClient(ctx context.Context, credentialsPath string, logger *logging.Logger) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, errors.New(errors.AuthFailed,
			fmt.Sprintf("cannot read credentials file %q", credentialsPath), err)
	}

	conf, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, errors.New(errors.AuthFailed, "invalid service-account credentials", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, errors.New(errors.AuthFailed, "cannot initialize sheets service", err)
	}

	return &Client{svc: svc, logger: logger}, nil
}

// Rows fetches the tab's value grid and maps it to Rows using row 1 as headers.
func (c *Client) Rows(ctx context.Context, spreadsheetID, tab string) ([]Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, tab).Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError(err, spreadsheetID, tab)
	}

	rows := GridToRows(resp.Values)
	c.logger.Debug("Fetched sheet values", map[string]interface{}{
		"tab":  tab,
		"rows": len(rows),
	})
	return rows, nil
}

// GridToRows converts a raw value grid into Rows. The first grid row supplies
// column names; short data rows are padded with empty strings and cells beyond
// the header width are dropped.
func GridToRows(values [][]interface{}) []Row {
	if len(values) < 2 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprintf("%v", h))
	}

	rows := make([]Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// mapAPIError translates Sheets API failures into the stable taxonomy.
// The API answers an unknown tab name with a 400 range-parse error rather
// than a 404, so both spell "tab not found" here.
func mapAPIError(err error, spreadsheetID, tab string) error {
	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return errors.New(errors.AuthFailed,
				"sheets API rejected the credentials for this spreadsheet", err)
		case apiErr.Code == 404:
			return errors.New(errors.TabNotFound,
				fmt.Sprintf("spreadsheet %q not found", spreadsheetID), err)
		case apiErr.Code == 400 && strings.Contains(apiErr.Message, "Unable to parse range"):
			return errors.New(errors.TabNotFound,
				fmt.Sprintf("tab %q not found in spreadsheet", tab), err)
		}
	}
	return errors.New(errors.InternalError, "sheets fetch failed", err)
}
