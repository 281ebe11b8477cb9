// Package export writes the transaction history to interchange formats
// (CSV, JSON, YAML) and reads transactions back from CSV files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"tallybook/internal/amountutils"
	"tallybook/internal/dateutils"
	"tallybook/internal/fileutils"
	"tallybook/internal/models"
)

var log = logrus.New()

// Delimiter used for CSV output. Configurable through SetDelimiter.
var Delimiter rune = ','

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// Format selects the output encoding for WriteFile.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv, json or yaml)", s)
	}
}

// Row is the flat representation of a transaction shared by all export
// formats.
type Row struct {
	ID       int    `csv:"ID" json:"id" yaml:"id"`
	Date     string `csv:"Date" json:"date" yaml:"date"`
	Kind     string `csv:"Kind" json:"kind" yaml:"kind"`
	Amount   string `csv:"Amount" json:"amount" yaml:"amount"`
	Category string `csv:"Category" json:"category" yaml:"category"`
	Payee    string `csv:"Payee" json:"payee" yaml:"payee"`
	Note     string `csv:"Note" json:"note" yaml:"note"`
}

func toRow(tx models.Transaction) Row {
	return Row{
		ID:       tx.ID,
		Date:     dateutils.ToISODate(tx.Date),
		Kind:     string(tx.Kind),
		Amount:   amountutils.FormatAmount(tx.Amount),
		Category: tx.Category,
		Payee:    tx.Payee,
		Note:     tx.Note,
	}
}

func fromRow(row Row) (models.Transaction, error) {
	kind, err := models.ParseKind(row.Kind)
	if err != nil {
		return models.Transaction{}, err
	}
	amount, err := amountutils.ParseNonNegative(row.Amount)
	if err != nil {
		return models.Transaction{}, err
	}
	date, _, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		ID:       row.ID,
		Amount:   amount,
		Kind:     kind,
		Category: row.Category,
		Date:     date,
		Note:     row.Note,
		Payee:    row.Payee,
	}, nil
}

// WriteFile writes the transactions to path in the given format, creating
// parent directories as needed.
func WriteFile(path string, txs []models.Transaction, format Format) error {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, toRow(tx))
	}

	log.WithFields(logrus.Fields{
		"file":   path,
		"format": string(format),
		"count":  len(rows),
	}).Info("Exporting transactions")

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	switch format {
	case FormatCSV:
		return writeCSV(path, rows)
	case FormatJSON:
		return writeJSON(path, rows)
	case FormatYAML:
		return writeYAML(path, rows)
	default:
		return fmt.Errorf("unknown export format %q (want csv, json or yaml)", format)
	}
}

func writeCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

func writeJSON(path string, rows []Row) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON data: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}

func writeYAML(path string, rows []Row) error {
	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("error encoding YAML data: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing YAML file: %w", err)
	}
	return nil
}

// ReadCSV reads transactions from a CSV file previously produced by WriteFile
// or assembled by hand. Dates may use any of the commonly accepted layouts;
// the whole file is rejected on the first invalid row.
func ReadCSV(path string) ([]models.Transaction, error) {
	log.WithField("file", path).Info("Reading CSV file")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var rows []Row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	txs := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}

	log.WithField("count", len(txs)).Info("Successfully read CSV data")
	return txs, nil
}
