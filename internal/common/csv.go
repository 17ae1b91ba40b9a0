// Package common provides shared CSV functionality for dataset input and
// output.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"tactics-csv/internal/fileutils"
	"tactics-csv/internal/logging"
	"tactics-csv/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Global CSV delimiter - can be configured via centralized config or environment variable
var Delimiter rune = ','

func init() {
	// Fallback to environment variable for backward compatibility
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		// Use first rune only
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for all CSV input and output, including
// gocsv-based report writers.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// ReadDatasetCSV reads a CSV file with arbitrary named columns into a
// Dataset. The first record is the header; column order is preserved.
// Datasets have no fixed schema, so this reads generic records rather than
// tagged structs.
func ReadDatasetCSV(filePath string) (*models.Dataset, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading dataset CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	records, err := reader.ReadAll()
	if err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	if len(records) == 0 {
		return &models.Dataset{}, nil
	}

	ds := &models.Dataset{
		Columns: records[0],
		Rows:    make([]models.Row, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make(models.Row, len(ds.Columns))
		for i, col := range ds.Columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	log.WithField(logging.FieldRows, len(ds.Rows)).Info("Successfully read dataset")
	return ds, nil
}

// WriteDatasetCSV writes a Dataset to a CSV file, header first, columns in
// dataset order.
func WriteDatasetCSV(ds *models.Dataset, filePath string) error {
	if ds == nil {
		return fmt.Errorf("cannot write nil dataset to CSV")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldRows, Value: len(ds.Rows)},
	).Info("Writing dataset to CSV file")

	dir := filepath.Dir(filePath)
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter

	if err := writer.Write(ds.Columns); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	record := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for i, col := range ds.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldRows, Value: len(ds.Rows)},
	).Info("Successfully wrote dataset to CSV file")

	return nil
}
