package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/san-kum/fireworks/internal/export"
	"github.com/san-kum/fireworks/internal/show"
)

const (
	metadataFile = "metadata.json"
	statsFile    = "stats.csv"
)

var ErrUnknownColumn = errors.New("storage: unknown stats column")

// Store keeps headless run reports, one directory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Duration  float64            `json:"duration"`
	FPS       int                `json:"fps"`
	Ticks     int                `json:"ticks"`
	Params    show.Params        `json:"params"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Run is a report being recorded. It implements show.Observer and writes
// every tick to stats.csv as it arrives.
type Run struct {
	ID    string
	dir   string
	file  *os.File
	stats *export.StatsCSV
}

// Begin creates the run directory and opens its stats file.
func (s *Store) Begin(prefix string) (*Run, error) {
	runID := fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, err
	}

	f, err := os.Create(filepath.Join(runDir, statsFile))
	if err != nil {
		return nil, err
	}

	return &Run{ID: runID, dir: runDir, file: f, stats: export.NewStatsCSV(f)}, nil
}

func (r *Run) OnTick(st show.Stats) { r.stats.OnTick(st) }

// Finish flushes the stats and writes the metadata under the run's ID.
func (r *Run) Finish(meta RunMetadata) error {
	flushErr := r.stats.Flush()
	if err := r.file.Close(); err != nil && flushErr == nil {
		flushErr = err
	}
	if flushErr != nil {
		return fmt.Errorf("write stats: %w", flushErr)
	}

	meta.ID = r.ID
	metaFile, err := os.Create(filepath.Join(r.dir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// List returns every finished run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	slices.SortFunc(runs, func(a, b RunMetadata) int { return a.Timestamp.Compare(b.Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadColumn reads one column of a run's stats, e.g. "particles".
func (s *Store) LoadColumn(runID, column string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []float64{}, nil
	}

	idx := slices.Index(records[0], column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownColumn, column, records[0])
	}

	values := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		v, err := strconv.ParseFloat(record[idx], 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, nil
}
