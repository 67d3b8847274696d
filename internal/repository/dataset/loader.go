package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/station-dashboard/internal/config"
	"github.com/station-dashboard/internal/domain"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	"github.com/station-dashboard/internal/pkg/frame"
	"go.uber.org/zap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Tables - the two source tables as read from disk
type Tables struct {
	Traffic   dataframe.DataFrame
	Locations dataframe.DataFrame
	LoadedAt  time.Time
}

// Loader reads the traffic and location files once at startup.
type Loader struct {
	cfg    *config.DataConfig
	logger *zap.Logger
}

func NewLoader(cfg *config.DataConfig, logger *zap.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logger,
	}
}

// Load reads both files. Any failure is an ErrLoad naming the file.
func (l *Loader) Load() (*Tables, error) {
	traffic, err := l.readFile(l.cfg.TrafficPath, domain.TrafficColumns, map[string]series.Type{
		domain.ColTraffic: series.Int,
	})
	if err != nil {
		return nil, err
	}

	locations, err := l.readFile(l.cfg.LocationsPath, domain.LocationColumns, nil)
	if err != nil {
		return nil, err
	}

	return &Tables{
		Traffic:   traffic,
		Locations: locations,
		LoadedAt:  time.Now(),
	}, nil
}

func (l *Loader) readFile(path string, required []string, types map[string]series.Type) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, loadError(path, err)
	}
	defer f.Close()

	df, err := ReadTable(f, l.cfg.Delimiter, required, types)
	if err != nil {
		return dataframe.DataFrame{}, loadError(path, err)
	}

	l.logger.Info("Dataset loaded",
		zap.String("path", path),
		zap.Int("rows", df.Nrow()),
		zap.Int("columns", df.Ncol()),
	)

	return df, nil
}

// ReadTable parses delimited text with a header row. Every column is read as
// a string except those listed in types. Columns in required must be present
// and typed columns must parse without gaps.
func ReadTable(r io.Reader, delimiter rune, required []string, types map[string]series.Type) (dataframe.DataFrame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse: %w", df.Err)
	}

	for _, col := range required {
		if err := frame.Require(df, col); err != nil {
			return dataframe.DataFrame{}, &columnError{column: col}
		}
	}

	for col := range types {
		if df.Col(col).HasNaN() {
			return dataframe.DataFrame{}, &columnError{column: col, reason: "non-numeric value"}
		}
	}

	return df, nil
}

type columnError struct {
	column string
	reason string
}

func (e *columnError) Error() string {
	if e.reason == "" {
		return fmt.Sprintf("column %q: missing", e.column)
	}
	return fmt.Sprintf("column %q: %s", e.column, e.reason)
}

func loadError(path string, cause error) error {
	details := map[string]interface{}{"path": path}
	var ce *columnError
	if errors.As(cause, &ce) {
		details["column"] = ce.column
	}
	return apperrors.ErrLoad.Wrap(fmt.Errorf("%s: %w", path, cause)).WithDetails(details)
}
