package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/biflab/internal/branch"
)

// Store reads and writes the branch snapshot files the external engine
// produces, laid out as <base>/systems/<system>/branches/<name>.json.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(filepath.Join(s.baseDir, "systems"), 0755)
}

// envelope is the on-disk wrapper around a branch payload.
type envelope struct {
	Type      string          `json:"type"`
	Name      string          `json:"name,omitempty"`
	Kind      branch.Kind     `json:"branchType"`
	Parameter string          `json:"parameterName"`
	Data      branch.Data     `json:"data"`
	Settings  branch.Settings `json:"settings"`
}

// BranchInfo is the listing record for one stored branch.
type BranchInfo struct {
	System    string
	Name      string
	Kind      branch.Kind
	Parameter string
	Points    int
}

func (s *Store) branchDir(system string) string {
	return filepath.Join(s.baseDir, "systems", system, "branches")
}

// List scans every system directory for continuation snapshots.
// Unreadable or non-continuation files are skipped.
func (s *Store) List() ([]BranchInfo, error) {
	systemsDir := filepath.Join(s.baseDir, "systems")
	entries, err := os.ReadDir(systemsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BranchInfo{}, nil
		}
		return nil, err
	}

	infos := make([]BranchInfo, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		system := entry.Name()
		files, err := os.ReadDir(s.branchDir(system))
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			name := strings.TrimSuffix(f.Name(), ".json")
			b, err := s.Load(system, name)
			if err != nil {
				continue
			}
			infos = append(infos, BranchInfo{
				System:    system,
				Name:      b.Name,
				Kind:      b.Type,
				Parameter: b.Parameter,
				Points:    b.Len(),
			})
		}
	}
	return infos, nil
}

// Load reads one branch snapshot.
func (s *Store) Load(system, name string) (*branch.Branch, error) {
	path := filepath.Join(s.branchDir(system), name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if env.Type != "continuation" {
		return nil, fmt.Errorf("%s is not a continuation snapshot", path)
	}
	if env.Name == "" {
		env.Name = name
	}

	return &branch.Branch{
		Name:      env.Name,
		Type:      env.Kind,
		Parameter: env.Parameter,
		Data:      env.Data,
		Settings:  env.Settings,
	}, nil
}

// LoadSystem reads the system definition next to a system's branches.
func (s *Store) LoadSystem(system string) (*branch.System, error) {
	path := filepath.Join(s.baseDir, "systems", system, "system.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sys branch.System
	if err := json.Unmarshal(data, &sys); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if sys.Name == "" {
		sys.Name = system
	}
	return &sys, nil
}

// SaveSystem writes a system definition.
func (s *Store) SaveSystem(sys *branch.System) error {
	dir := filepath.Join(s.baseDir, "systems", sys.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sys, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "system.json"), data, 0644)
}

// Save writes a branch snapshot in the engine's format, creating the
// system directory as needed.
func (s *Store) Save(system string, b *branch.Branch) error {
	dir := s.branchDir(system)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	env := envelope{
		Type:      "continuation",
		Name:      b.Name,
		Kind:      b.Type,
		Parameter: b.Parameter,
		Data:      b.Data,
		Settings:  b.Settings,
	}

	path := filepath.Join(dir, b.Name+".json")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
