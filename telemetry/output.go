package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"brigade/config"
	"brigade/orders"
)

// DeliveryRow is one completed order in deliveries.csv.
type DeliveryRow struct {
	OrderID     string  `csv:"order_id"`
	Dish        string  `csv:"dish"`
	ChefID      int     `csv:"chef_id"`
	Ingredients int     `csv:"ingredients"`
	CompletedAt float64 `csv:"completed_at"`
	Duration    float64 `csv:"duration"`
}

// NewDeliveryRow converts a completion record for CSV output.
func NewDeliveryRow(rec orders.CompletionRecord) DeliveryRow {
	return DeliveryRow{
		OrderID:     rec.OrderID.String(),
		Dish:        rec.Dish,
		ChefID:      rec.ChefID,
		Ingredients: rec.Ingredients,
		CompletedAt: rec.CompletedAt,
		Duration:    rec.Duration,
	}
}

// OutputManager handles structured session output with CSV logging.
type OutputManager struct {
	dir            string
	telemetryFile  *os.File
	deliveriesFile *os.File

	telemetryHeaderWritten  bool
	deliveriesHeaderWritten bool
}

// NewOutputManager creates an output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "deliveries.csv"))
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("creating deliveries.csv: %w", err)
	}
	om.deliveriesFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.telemetryHeaderWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WriteDelivery writes a completed order to deliveries.csv.
func (om *OutputManager) WriteDelivery(row DeliveryRow) error {
	if om == nil {
		return nil
	}

	records := []DeliveryRow{row}
	if !om.deliveriesHeaderWritten {
		if err := gocsv.Marshal(records, om.deliveriesFile); err != nil {
			return fmt.Errorf("writing delivery: %w", err)
		}
		om.deliveriesHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.deliveriesFile); err != nil {
		return fmt.Errorf("writing delivery: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.telemetryFile != nil {
		if err := om.telemetryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.deliveriesFile != nil {
		if err := om.deliveriesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
