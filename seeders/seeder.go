package seeders

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"handover-crm/internal/entities"
	apperrors "handover-crm/pkg/errors"
)

//go:embed data/sample.yaml
var sampleData []byte

// SampleData возвращает встроенный YAML с демо-записями дашборда.
func SampleData() []byte {
	return sampleData
}

// LoadDataset читает набор записей из файла или, при пустом пути,
// из встроенных демо-данных, и проверяет его.
func LoadDataset(path string, v *validator.Validate, logger *zap.Logger) (*entities.Dataset, error) {
	raw := sampleData
	source := "embedded"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("не удалось прочитать %s: %w", path, err)
		}
		raw = data
		source = path
	}

	dataset, err := ParseDataset(raw, v)
	if err != nil {
		return nil, err
	}

	logger.Info("Данные загружены",
		zap.String("source", source),
		zap.Int("clients", len(dataset.Clients)),
		zap.Int("equipment", len(dataset.Equipment)),
		zap.Int("handovers", len(dataset.Handovers)),
		zap.Int("tasks", len(dataset.Tasks)),
	)
	return dataset, nil
}

// ParseDataset разбирает YAML и проверяет перечисления, форматы и уникальность id.
func ParseDataset(raw []byte, v *validator.Validate) (*entities.Dataset, error) {
	var dataset entities.Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&dataset); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSeed, err)
	}

	if err := v.Struct(&dataset); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSeed, err)
	}

	checks := []struct {
		kind string
		ids  []string
	}{
		{"clients", clientIDs(dataset.Clients)},
		{"equipment", equipmentIDs(dataset.Equipment)},
		{"handovers", handoverIDs(dataset.Handovers)},
		{"tasks", taskIDs(dataset.Tasks)},
	}
	for _, c := range checks {
		if dup, ok := firstDuplicate(c.ids); ok {
			return nil, fmt.Errorf("%w: повторяющийся id %q в %s", apperrors.ErrInvalidSeed, dup, c.kind)
		}
	}

	return &dataset, nil
}

func firstDuplicate(ids []string) (string, bool) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}

func clientIDs(items []entities.Client) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func equipmentIDs(items []entities.Equipment) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func handoverIDs(items []entities.Handover) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func taskIDs(items []entities.Task) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
