// Command export runs the assessment pipeline over a transactions JSON
// file and writes the GSTR-1 and GSTR-3B workbooks for the period.
// Usage: go run ./cmd/export -in transactions.json -period 062025 -out exports/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"niyam/internal/domain"
	"niyam/internal/engine"
	"niyam/internal/export"
	"niyam/internal/returns"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inPath := flag.String("in", "", "path to a JSON array of transactions")
	period := flag.String("period", "", "filing period in MMYYYY form")
	outDir := flag.String("out", "exports", "directory the workbooks are written into")
	flag.Parse()

	if *inPath == "" || *period == "" {
		flag.Usage()
		return fmt.Errorf("both -in and -period are required")
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var txs []domain.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		return fmt.Errorf("parse transactions: %w", err)
	}

	eng := engine.New()
	assessments, err := eng.AssessBatch(txs)
	if err != nil {
		return fmt.Errorf("assess transactions: %w", err)
	}
	log.Printf("assessed %d transactions", len(assessments))

	entries := make([]returns.Entry, 0, len(assessments))
	for i, a := range assessments {
		entries = append(entries, returns.Entry{
			Transaction:    txs[i],
			Classification: a.Classification,
			ITC:            a.ITC,
		})
	}

	gstr1 := returns.BuildGSTR1(*period, entries)
	gstr3b := returns.BuildGSTR3B(*period, entries)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	runID := uuid.New().String()[:8]
	gstr1Path := filepath.Join(*outDir, fmt.Sprintf("gstr1_%s_%s.xlsx", *period, runID))
	if err := writeWorkbook(gstr1Path, func(f *os.File) error {
		return export.WriteGSTR1Workbook(f, gstr1)
	}); err != nil {
		return err
	}
	log.Printf("wrote %s", gstr1Path)

	gstr3bPath := filepath.Join(*outDir, fmt.Sprintf("gstr3b_%s_%s.xlsx", *period, runID))
	if err := writeWorkbook(gstr3bPath, func(f *os.File) error {
		return export.WriteGSTR3BWorkbook(f, gstr3b)
	}); err != nil {
		return err
	}
	log.Printf("wrote %s", gstr3bPath)

	return nil
}

func writeWorkbook(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
