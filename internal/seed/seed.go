// Package seed provides the built-in truck classes and loads custom ones from YAML or JSON files.
package seed

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

// ErrUnsupportedFormat is returned for seed files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported seed file format")

// Entry is one truck class in a seed file.
type Entry struct {
	Name             string  `json:"name"`
	BaseKmPerLiter   float64 `json:"base_km_per_liter"`
	LoadedMultiplier float64 `json:"loaded_multiplier"`
	IsActive         *bool   `json:"is_active"`
}

type seedFile struct {
	TruckClasses []Entry `json:"truck_classes"`
}

// Defaults returns the common Nigerian truck classes the service ships with.
func Defaults() []model.TruckClass {
	return []model.TruckClass{
		model.NewTruckClass("Mini Pickup / Small Van", 12.0, 0.90),
		model.NewTruckClass("Pickup Truck (Toyota Hilux Class)", 12.0, 0.85),
		model.NewTruckClass("Medium Truck (Isuzu ELF / Dyna / Canter)", 9.0, 0.80),
		model.NewTruckClass("2-Axle Truck", 5.0, 0.85),
		model.NewTruckClass("3-Axle Truck / Heavy Duty", 4.0, 0.75),
	}
}

// LoadFile reads truck classes from a .yaml, .yml or .json file with a top-level
// truck_classes list. Every entry is validated; the first invalid one fails the load.
func LoadFile(path string) ([]model.TruckClass, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load seed file %s: %w", path, err)
	}

	var sf seedFile
	if err := k.UnmarshalWithConf("", &sf, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	classes := make([]model.TruckClass, 0, len(sf.TruckClasses))
	for i, e := range sf.TruckClasses {
		tc := model.NewTruckClass(e.Name, e.BaseKmPerLiter, e.LoadedMultiplier)
		if e.IsActive != nil {
			tc.IsActive = *e.IsActive
		}
		if err := tc.Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
		}
		classes = append(classes, tc)
	}
	return classes, nil
}
