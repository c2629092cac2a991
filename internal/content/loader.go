// Package content loads scenario packs from YAML files. A pack overlays the
// built-in challenge, mission and password banks so operators can customize a
// session without rebuilding the binary.
package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// Pack is the merged result of every YAML file in a content directory
type Pack struct {
	Challenges []models.Challenge
	Missions   []models.Mission
	Passwords  []models.Password
}

// packFile represents the YAML structure of a single content file. Any of the
// three lists may be present.
type packFile struct {
	Challenges []models.Challenge `yaml:"challenges"`
	Missions   []models.Mission   `yaml:"missions"`
	Passwords  []models.Password  `yaml:"passwords"`
}

// LoadDir reads all *.yaml / *.yml files in dir and merges them into a Pack.
// Files that fail to parse are logged and skipped. A missing directory is not
// an error: the built-in banks apply unchanged.
func LoadDir(dir string) (*Pack, error) {
	pack := &Pack{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("content directory not found, using built-in banks", "dir", dir)
			return pack, nil
		}
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := loadFile(path, pack); err != nil {
			slog.Warn("failed to load content file", "file", entry.Name(), "error", err)
			continue
		}
		loaded++
	}

	slog.Info("content pack loaded", "dir", dir, "files", loaded,
		"challenges", len(pack.Challenges), "missions", len(pack.Missions), "passwords", len(pack.Passwords))
	return pack, nil
}

func loadFile(path string, pack *Pack) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	for _, c := range pf.Challenges {
		if c.ID == "" || c.Question == "" || len(c.AcceptedAnswers) == 0 {
			slog.Warn("skipping invalid challenge entry", "file", filepath.Base(path), "id", c.ID)
			continue
		}
		pack.Challenges = append(pack.Challenges, c)
	}

	for _, m := range pf.Missions {
		if m.ID == "" || m.Name == "" {
			slog.Warn("skipping invalid mission entry", "file", filepath.Base(path), "id", m.ID)
			continue
		}
		pack.Missions = append(pack.Missions, m)
	}

	for _, p := range pf.Passwords {
		if p.Code == "" {
			slog.Warn("skipping password entry with empty code", "file", filepath.Base(path))
			continue
		}
		p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
		pack.Passwords = append(pack.Passwords, p)
	}

	return nil
}
