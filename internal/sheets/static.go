package sheets

import "context"

// StaticSource serves fixed rows. The demo binary and tests use it in place
// of the network.
type StaticSource struct {
	BoatRows    [][]string
	ListingRows [][]string

	// BoatErr and ListingErr, when set, are returned by the matching fetch
	BoatErr    error
	ListingErr error
}

// FetchBoatRows returns BoatRows or BoatErr
func (s *StaticSource) FetchBoatRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.BoatErr != nil {
		return nil, s.BoatErr
	}
	return copyRows(s.BoatRows), nil
}

// FetchListingRows returns ListingRows or ListingErr
func (s *StaticSource) FetchListingRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.ListingErr != nil {
		return nil, s.ListingErr
	}
	return copyRows(s.ListingRows), nil
}

// copyRows keeps callers from aliasing the fixture
func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
