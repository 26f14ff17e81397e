// Package storage persists completed runs under a data directory:
// metadata.json per run plus a CSV of sampled series. Stationary runs
// store wavefunctions against x; dynamic runs store probability
// densities against t.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/quantum"
)

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
	Potential string             `json:"potential"`
	Mode      string             `json:"mode"`
	Scheme    string             `json:"scheme,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	XMin      float64            `json:"x_min"`
	XMax      float64            `json:"x_max"`
	N         int                `json:"n"`
	Mass      float64            `json:"mass"`
	Dt        float64            `json:"dt,omitempty"`
	Steps     int                `json:"steps,omitempty"`
	NumStates int                `json:"num_states,omitempty"`
	Energies  []float64          `json:"energies,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Warnings  []string           `json:"warnings,omitempty"`
}

func (s *Store) newMeta(cfg *config.Config) RunMetadata {
	return RunMetadata{
		ID:        fmt.Sprintf("%s_%d", cfg.Potential, time.Now().Unix()),
		Potential: cfg.Potential,
		Mode:      cfg.Mode,
		Timestamp: time.Now(),
		XMin:      cfg.Grid.XMin,
		XMax:      cfg.Grid.XMax,
		N:         cfg.Grid.N,
		Mass:      cfg.Mass,
	}
}

// SaveStationary stores eigenstate energies in the metadata and the
// normalized wavefunctions as CSV columns against x.
func (s *Store) SaveStationary(cfg *config.Config, set *quantum.EigenstateSet) (string, error) {
	meta := s.newMeta(cfg)
	meta.NumStates = len(set.States)
	meta.Energies = set.Energies()

	header := []string{"x"}
	for i := range set.States {
		header = append(header, fmt.Sprintf("psi%d", i))
	}
	rows := make([][]float64, set.Grid.N)
	for i := 0; i < set.Grid.N; i++ {
		row := make([]float64, 0, len(set.States)+1)
		row = append(row, set.Grid.Points[i])
		for _, st := range set.States {
			row = append(row, st.Psi[i])
		}
		rows[i] = row
	}
	return meta.ID, s.write(meta, header, rows)
}

// SaveEvolution stores per-step probability densities against t, with
// run metrics (norm drift, transmission results) in the metadata.
func (s *Store) SaveEvolution(cfg *config.Config, traj *quantum.Trajectory, metrics map[string]float64) (string, error) {
	meta := s.newMeta(cfg)
	meta.Scheme = traj.Scheme
	meta.Dt = traj.Dt
	meta.Steps = len(traj.Steps) - 1
	meta.Metrics = metrics
	meta.Warnings = traj.Warnings

	n := 0
	if len(traj.Steps) > 0 {
		n = len(traj.Steps[0].Psi)
	}
	header := []string{"t"}
	for i := 0; i < n; i++ {
		header = append(header, fmt.Sprintf("d%d", i))
	}
	rows := make([][]float64, len(traj.Steps))
	for i, w := range traj.Steps {
		row := make([]float64, 0, n+1)
		row = append(row, w.Time)
		row = append(row, w.Density()...)
		rows[i] = row
	}
	return meta.ID, s.write(meta, header, rows)
}

func (s *Store) write(meta RunMetadata, header []string, rows [][]float64) error {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()
	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', 10, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads a run's CSV back: the key column (x or t) and one
// slice per remaining column row.
func (s *Store) LoadSeries(runID string) (keys []float64, rows [][]float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		key, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(rec)-1)
		for _, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		keys = append(keys, key)
		rows = append(rows, row)
	}
	return keys, rows, nil
}
