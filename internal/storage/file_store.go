// Package storage persists the rota configuration as a single JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/diegoclair/friday-rota/internal/domain/contract"
	"github.com/diegoclair/friday-rota/internal/domain/entity"
)

// fileRecord mirrors entity.RotaConfig with pointers where an absent
// field must fall back to a default instead of a zero value.
type fileRecord struct {
	Members         *[]string         `json:"members"`
	StartMember     *string           `json:"start_member"`
	SlackWebhookURL string            `json:"slack_webhook_url"`
	SlackIDMap      map[string]string `json:"slack_id_map"`
	Overrides       map[string]string `json:"overrides"`
}

type fileStore struct {
	path           string
	defaultMembers []string
}

// New returns a ConfigStore backed by the JSON file at path.
// defaultMembers seeds the configuration when the file does not exist.
func New(path string, defaultMembers []string) contract.ConfigStore {
	return &fileStore{
		path:           path,
		defaultMembers: append([]string(nil), defaultMembers...),
	}
}

func (s *fileStore) Load() (*entity.RotaConfig, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := s.defaultConfig()
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", s.path, err)
	}

	var record fileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", s.path, err)
	}

	cfg := &entity.RotaConfig{
		Members:         s.copyDefaultMembers(),
		StartMember:     s.defaultStartMember(),
		SlackWebhookURL: record.SlackWebhookURL,
		SlackIDMap:      record.SlackIDMap,
		Overrides:       record.Overrides,
	}
	if record.Members != nil {
		cfg.Members = *record.Members
	}
	if record.StartMember != nil {
		cfg.StartMember = *record.StartMember
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes the whole configuration, replacing any previous content.
func (s *fileStore) Save(cfg *entity.RotaConfig) error {
	cfg.Normalize()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}

	return nil
}

func (s *fileStore) defaultConfig() *entity.RotaConfig {
	return &entity.RotaConfig{
		Members:         s.copyDefaultMembers(),
		StartMember:     s.defaultStartMember(),
		SlackWebhookURL: "",
		SlackIDMap:      map[string]string{},
		Overrides:       map[string]string{},
	}
}

func (s *fileStore) copyDefaultMembers() []string {
	return append([]string{}, s.defaultMembers...)
}

func (s *fileStore) defaultStartMember() string {
	if len(s.defaultMembers) == 0 {
		return ""
	}
	return s.defaultMembers[0]
}
