package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// valuesAPI is the narrow slice of the Google Sheets API the service needs.
// Tests substitute an in-memory implementation.
type valuesAPI interface {
	sheetTitles(ctx context.Context) ([]string, error)
	readRange(ctx context.Context, rng string) ([][]interface{}, error)
	updateRange(ctx context.Context, rng string, values [][]interface{}) error
	appendRows(ctx context.Context, rng string, values [][]interface{}) error
	clearRange(ctx context.Context, rng string) error
}

type googleAPI struct {
	svc           *gsheets.Service
	spreadsheetID string
}

func newGoogleAPI(ctx context.Context, credentialsJSON, spreadsheetID string) (*googleAPI, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &googleAPI{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (a *googleAPI) sheetTitles(ctx context.Context) ([]string, error) {
	resp, err := a.svc.Spreadsheets.Get(a.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}
	titles := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (a *googleAPI) readRange(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := a.svc.Spreadsheets.Values.Get(a.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rng, err)
	}
	return resp.Values, nil
}

func (a *googleAPI) updateRange(ctx context.Context, rng string, values [][]interface{}) error {
	_, err := a.svc.Spreadsheets.Values.
		Update(a.spreadsheetID, rng, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", rng, err)
	}
	return nil
}

func (a *googleAPI) appendRows(ctx context.Context, rng string, values [][]interface{}) error {
	_, err := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, rng, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", rng, err)
	}
	return nil
}

func (a *googleAPI) clearRange(ctx context.Context, rng string) error {
	_, err := a.svc.Spreadsheets.Values.
		Clear(a.spreadsheetID, rng, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", rng, err)
	}
	return nil
}
