package api

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/erp-rates/formatter"
	"github.com/theoremus-urban-solutions/erp-rates/gantry"
	"github.com/theoremus-urban-solutions/erp-rates/rates"
)

// Store holds the dataset currently being served. Reloads swap the whole
// dataset; readers never see a partial one.
type Store struct {
	mu       sync.RWMutex
	data     *gantry.Dataset
	status   map[string]rates.StatusTable
	loadedAt time.Time
}

// NewStore returns a store serving d, or an empty dataset when d is nil.
func NewStore(d *gantry.Dataset) *Store {
	if d == nil {
		d = gantry.NewDataset(nil, nil)
	}
	return &Store{data: d, loadedAt: time.Now()}
}

// Set replaces the served dataset.
func (s *Store) Set(d *gantry.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
	s.loadedAt = time.Now()
}

// Get returns the served dataset and when it was loaded.
func (s *Store) Get() (*gantry.Dataset, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, s.loadedAt
}

// SetStatus replaces the served status tables, keyed by group slug.
func (s *Store) SetStatus(status map[string]rates.StatusTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Status returns the status table of one group.
func (s *Store) Status(slug string) (rates.StatusTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.status[slug]
	return t, ok
}

// LoadStatusFile reads a status file and swaps it in.
func (s *Store) LoadStatusFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open status: %w", err)
	}
	defer f.Close()
	status, err := formatter.ReadStatus(f)
	if err != nil {
		return err
	}
	s.SetStatus(status)
	return nil
}

// LoadFiles reads a features file and a splits file and swaps them in.
func (s *Store) LoadFiles(featuresPath, splitsPath string) error {
	d, err := ReadDataset(featuresPath, splitsPath)
	if err != nil {
		return err
	}
	s.Set(d)
	return nil
}

// ReadDataset reads the line-delimited features and the splits JSON.
func ReadDataset(featuresPath, splitsPath string) (*gantry.Dataset, error) {
	ff, err := os.Open(featuresPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open features: %w", err)
	}
	defer ff.Close()
	features, err := formatter.ReadFeatures(ff)
	if err != nil {
		return nil, err
	}

	sf, err := os.Open(splitsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open splits: %w", err)
	}
	defer sf.Close()
	splits, err := formatter.ReadSplits(sf)
	if err != nil {
		return nil, err
	}
	return gantry.NewDataset(features, splits), nil
}
