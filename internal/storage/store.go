package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/srcsim/internal/angle"
	"github.com/san-kum/srcsim/internal/engine"
	"github.com/san-kum/srcsim/internal/source"
	"github.com/san-kum/srcsim/internal/space"
	"github.com/san-kum/srcsim/internal/stats"
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
	ID         string        `json:"id"`
	Source     string        `json:"source"`
	SourceType string        `json:"source_type"`
	Timestamp  time.Time     `json:"timestamp"`
	Seed       int64         `json:"seed"`
	Particles  int           `json:"particles"`
	Sources    int           `json:"sources"`
	Energy     stats.Summary `json:"energy"`
}

// Save writes one sampled batch under the data dir as metadata.json plus a
// particles.csv and returns the generated run id.
func (s *Store) Save(sourceName, sourceType string, seed int64, nSources int, batch *engine.Batch) (string, error) {
	runID := fmt.Sprintf("%s_%d", sourceName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Source:     sourceName,
		SourceType: sourceType,
		Timestamp:  time.Now(),
		Seed:       seed,
		Particles:  len(batch.Particles),
		Sources:    nSources,
		Energy:     stats.Summarize(batch.Energies()),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "particles.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"x", "y", "z", "u", "v", "w", "energy", "source"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, p := range batch.Particles {
		row := []string{
			strconv.FormatFloat(p.Position.X, 'f', 6, 64),
			strconv.FormatFloat(p.Position.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Position.Z, 'f', 6, 64),
			strconv.FormatFloat(p.Direction.U, 'f', 6, 64),
			strconv.FormatFloat(p.Direction.V, 'f', 6, 64),
			strconv.FormatFloat(p.Direction.W, 'f', 6, 64),
			strconv.FormatFloat(p.Energy, 'g', -1, 64),
			strconv.Itoa(p.SourceIdx),
		}
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadParticles reads the particle records of a saved run.
func (s *Store) LoadParticles(runID string) ([]source.Particle, error) {
	csvPath := filepath.Join(s.baseDir, runID, "particles.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 8

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []source.Particle{}, nil
	}

	particles := make([]source.Particle, 0, len(records)-1)
	for _, record := range records[1:] {
		vals := make([]float64, 7)
		ok := true
		for j := 0; j < 7; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		idx, err := strconv.Atoi(record[7])
		if err != nil {
			continue
		}
		particles = append(particles, source.Particle{
			Position:  space.Position{X: vals[0], Y: vals[1], Z: vals[2]},
			Direction: angle.Direction{U: vals[3], V: vals[4], W: vals[5]},
			Energy:    vals[6],
			SourceIdx: idx,
		})
	}

	return particles, nil
}

// ExportJSON writes a saved run (metadata plus particles) as indented JSON.
func (s *Store) ExportJSON(runID string, out *json.Encoder) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	particles, err := s.LoadParticles(runID)
	if err != nil {
		return err
	}
	return out.Encode(struct {
		Meta      *RunMetadata      `json:"meta"`
		Particles []source.Particle `json:"particles"`
	}{Meta: meta, Particles: particles})
}
