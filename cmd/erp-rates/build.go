package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/erp-rates/config"
	"github.com/theoremus-urban-solutions/erp-rates/formatter"
	"github.com/theoremus-urban-solutions/erp-rates/gantry"
	"github.com/theoremus-urban-solutions/erp-rates/rates"
)

// buildResult is everything one build run produces.
type buildResult struct {
	groups   []rates.Group
	tables   *rates.Tables
	features []gantry.Feature
}

// build runs grouping, table building and feature generation on raw payloads.
func build(ratesData, gantriesData []byte) (*buildResult, error) {
	records, err := formatter.DecodeRecords(ratesData)
	if err != nil {
		return nil, err
	}
	gantries, err := formatter.DecodeGantries(gantriesData)
	if err != nil {
		return nil, err
	}
	groups, err := rates.Prepare(records)
	if err != nil {
		return nil, err
	}
	tables := rates.Build(groups)
	features, err := gantry.BuildFeatures(gantries, rates.Flatten(tables.Rates))
	if err != nil {
		return nil, err
	}
	return &buildResult{groups: groups, tables: tables, features: features}, nil
}

// runBuild fetches the sources and writes the output files.
func runBuild(ctx context.Context, f *fetcher, src config.SourceConfig, out config.OutputConfig) error {
	ratesData, gantriesData, err := f.fetchAll(ctx, src.RatesURL, src.GantriesURL)
	if err != nil {
		return err
	}
	res, err := build(ratesData, gantriesData)
	if err != nil {
		return err
	}
	log.Printf("built %d groups, %d gantries", len(res.groups), len(res.features))

	if err := writeFile(out.GroupedRatesPath, func(w io.Writer) error {
		return formatter.WriteGroupedRates(w, rates.Index(res.groups))
	}); err != nil {
		return err
	}
	if err := writeFile(out.SplitsPath, func(w io.Writer) error {
		return formatter.WriteSplits(w, res.tables.Splits)
	}); err != nil {
		return err
	}
	if err := writeFile(out.StatusPath, func(w io.Writer) error {
		return formatter.WriteStatus(w, res.tables.Status)
	}); err != nil {
		return err
	}
	return writeFile(out.FeaturesPath, func(w io.Writer) error {
		return formatter.WriteFeatures(w, res.features)
	})
}

// writeFile writes through a temp file and renames it into place so a
// watcher never reads a half-written file. An empty path skips the output.
func writeFile(path string, write func(io.Writer) error) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".erp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
