package dataset

import "context"

// RecordLoader supplies the three raw collections, already parsed into
// typed records. Implementations report failures as ErrSourceUnavailable
// or ErrMalformedSource (see LoadError).
type RecordLoader interface {
	LoadProvinces(ctx context.Context) ([]Province, error)
	LoadDistricts(ctx context.Context) ([]District, error)
	LoadSubDistricts(ctx context.Context) ([]SubDistrict, error)
}
