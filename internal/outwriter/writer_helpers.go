package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
)

// writeWithFile sends one rendering of the project list to outputFile, or stdout
// when outputFile is empty, and reports where a saved file went.
func writeWithFile(outputFile string, mode schema.OutputMode, count int, render func(io.Writer) error) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if file == os.Stdout {
		return render(file)
	}
	defer func() { _ = file.Close() }()

	if err := render(file); err != nil {
		return err
	}
	reportSaved(outputFile, mode, count)
	return nil
}

// reportSaved prints the save notice on stderr so stdout stays pipeable.
func reportSaved(outputFile string, mode schema.OutputMode, count int) {
	fmt.Fprintf(os.Stderr, "💾 Saved %d projects as %s to %s\n", count, mode, outputFile)
}

// writeJSON encodes data as indented JSON.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes header, then whatever writeRows emits, and flushes.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
