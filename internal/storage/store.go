// Package storage persists simulation runs under a data directory, one
// directory per run with metadata.json and generations.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/groeilab/internal/growth"
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
	ID             string    `json:"id"`
	Demo           string    `json:"demo"`
	Timestamp      time.Time `json:"timestamp"`
	Start          int       `json:"start"`
	K              int       `json:"k"`
	Generations    int       `json:"generations"`
	IncludeParents bool      `json:"include_parents"`
	Factor         int       `json:"factor"`
	Final          int64     `json:"final"`
}

func (s *Store) Save(demo string, series *growth.Series) (string, error) {
	runID := fmt.Sprintf("%s_%d", demo, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	p := series.Params
	meta := RunMetadata{
		ID:             runID,
		Demo:           demo,
		Timestamp:      time.Now(),
		Start:          p.Start,
		K:              p.K,
		Generations:    p.Generations,
		IncludeParents: p.IncludeParents,
		Factor:         p.Factor(),
		Final:          series.Last(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "generations.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"generation", "count"}); err != nil {
		return "", err
	}
	for g, c := range series.Counts {
		row := []string{strconv.Itoa(g), strconv.FormatInt(c, 10)}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
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

// LoadSeries rebuilds the count series of a stored run.
func (s *Store) LoadSeries(runID string) (*growth.Series, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "generations.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	counts := make([]int64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		c, err := strconv.ParseInt(records[i][1], 10, 64)
		if err != nil {
			continue
		}
		counts = append(counts, c)
	}

	return &growth.Series{
		Params: growth.Params{
			Start:          meta.Start,
			K:              meta.K,
			Generations:    meta.Generations,
			IncludeParents: meta.IncludeParents,
		},
		Counts: counts,
	}, nil
}
