// Package almanac loads seeds and pipelines from their text and YAML forms.
package almanac

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/liznear/seedmap/model"
	"github.com/liznear/seedmap/pipeline"
)

var (
	ErrSyntax          = errors.New("almanac: syntax error")
	ErrNoSeeds         = errors.New("almanac: no seeds")
	ErrOddSeeds        = errors.New("almanac: seeds do not form (start, size) pairs")
	ErrOverlappingMaps = errors.New("almanac: overlapping maps")
)

// Almanac is a list of seeds together with the pipeline they go through.
type Almanac struct {
	Seeds    []uint64
	Pipeline pipeline.Pipeline
}

// SeedRanges reads the seeds as (start, size) pairs.
func (a *Almanac) SeedRanges() ([]model.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d numbers", ErrOddSeeds, len(a.Seeds))
	}
	ret := make([]model.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := model.NewRange(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("almanac: fail to build seed range %d: %w", i/2, err)
		}
		ret = append(ret, r)
	}
	return ret, nil
}

// Load reads the almanac at path. Files ending in .yaml or .yml are decoded as YAML,
// anything else as text.
func Load(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("almanac: fail to open %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// checkDisjoint returns ErrOverlappingMaps if two maps of s share a source value.
func checkDisjoint(s pipeline.Stage) error {
	// domain start -> domain end
	domains := treemap.New[uint64, uint64]()
	for _, m := range s.Maps {
		d := m.Domain()
		if start, end, ok := domains.Floor(d.Start()); ok && end >= d.Start() {
			return fmt.Errorf("%w: stage %q: %s and [%d, %d]", ErrOverlappingMaps, s.Name, d, start, end)
		}
		if start, end, ok := domains.Ceiling(d.Start()); ok && start <= d.End() {
			return fmt.Errorf("%w: stage %q: %s and [%d, %d]", ErrOverlappingMaps, s.Name, d, start, end)
		}
		domains.Put(d.Start(), d.End())
	}
	return nil
}

func validate(a *Almanac) (*Almanac, error) {
	if len(a.Seeds) == 0 {
		return nil, ErrNoSeeds
	}
	for _, s := range a.Pipeline {
		if err := checkDisjoint(s); err != nil {
			return nil, err
		}
	}
	return a, nil
}
