package sheets

import "context"

// Source supplies the raw rows of both datasets, header row included
type Source interface {
	// FetchBoatRows retrieves the boat profile sheet
	FetchBoatRows(ctx context.Context) ([][]string, error)

	// FetchListingRows retrieves the per-date trip listing sheet
	FetchListingRows(ctx context.Context) ([][]string, error)
}
