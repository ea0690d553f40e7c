package loaders

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"thaigeo/internal/dataset"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown dataset format %q (want json or csv)", s)
	}
}

// ObjectName is the dataset-relative path of a collection, for example
// "json/provinces.json" or "csv/sub_districts.csv".
func ObjectName(c dataset.Collection, f Format) string {
	return path.Join(string(f), string(c)+"."+string(f))
}

// SourceLoader reads the published JSON or CSV files from a Source.
type SourceLoader struct {
	source Source
	format Format
	logger *zap.Logger
}

func NewSourceLoader(source Source, format Format, logger *zap.Logger) *SourceLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SourceLoader{source: source, format: format, logger: logger}
}

func (l *SourceLoader) fetch(ctx context.Context, c dataset.Collection) ([]byte, error) {
	name := ObjectName(c, l.format)
	start := time.Now()
	b, err := l.source.Fetch(ctx, name)
	if err != nil {
		return nil, dataset.SourceUnavailable(c, err)
	}
	l.logger.Debug("source fetched",
		zap.String("source", l.source.String()),
		zap.String("object", name),
		zap.Int("bytes", len(b)),
		zap.Duration("elapsed", time.Since(start)))
	return b, nil
}

func (l *SourceLoader) LoadProvinces(ctx context.Context) ([]dataset.Province, error) {
	return load(ctx, l, dataset.CollectionProvinces, decodeProvincesJSON, decodeProvincesCSV)
}

func (l *SourceLoader) LoadDistricts(ctx context.Context) ([]dataset.District, error) {
	return load(ctx, l, dataset.CollectionDistricts, decodeDistrictsJSON, decodeDistrictsCSV)
}

func (l *SourceLoader) LoadSubDistricts(ctx context.Context) ([]dataset.SubDistrict, error) {
	return load(ctx, l, dataset.CollectionSubDistricts, decodeSubDistrictsJSON, decodeSubDistrictsCSV)
}

func load[T any](ctx context.Context, l *SourceLoader, c dataset.Collection,
	fromJSON, fromCSV func([]byte) ([]T, error)) ([]T, error) {

	b, err := l.fetch(ctx, c)
	if err != nil {
		return nil, err
	}
	decode := fromJSON
	if l.format == FormatCSV {
		decode = fromCSV
	}
	items, err := decode(b)
	if err != nil {
		return nil, dataset.MalformedSource(c, err)
	}
	return items, nil
}

var _ dataset.RecordLoader = (*SourceLoader)(nil)
