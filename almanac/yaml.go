package almanac

import (
	"fmt"
	"io"

	"github.com/liznear/seedmap/model"
	"github.com/liznear/seedmap/pipeline"
	"gopkg.in/yaml.v3"
)

type yamlAlmanac struct {
	Seeds  []uint64    `yaml:"seeds"`
	Stages []yamlStage `yaml:"stages"`
}

type yamlStage struct {
	Name string    `yaml:"name"`
	Maps []yamlMap `yaml:"maps"`
}

type yamlMap struct {
	Target uint64 `yaml:"target"`
	Source uint64 `yaml:"source"`
	Size   uint64 `yaml:"size"`
}

// ParseYAML reads an almanac of the form
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    maps:
//	      - {target: 50, source: 98, size: 2}
func ParseYAML(r io.Reader) (*Almanac, error) {
	var doc yamlAlmanac
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	a := &Almanac{Seeds: doc.Seeds}
	for i, ys := range doc.Stages {
		s := pipeline.Stage{Name: ys.Name}
		for j, ym := range ys.Maps {
			m, err := model.NewRangeMap(ym.Source, ym.Size, ym.Target)
			if err != nil {
				return nil, fmt.Errorf("%w: stage %d map %d: %w", ErrSyntax, i, j, err)
			}
			s.Maps = append(s.Maps, m)
		}
		a.Pipeline = append(a.Pipeline, s)
	}
	return validate(a)
}

// MarshalYAML writes a in the form read by ParseYAML.
func (a *Almanac) MarshalYAML() (interface{}, error) {
	doc := yamlAlmanac{Seeds: a.Seeds}
	for _, s := range a.Pipeline {
		ys := yamlStage{Name: s.Name}
		for _, m := range s.Maps {
			ys.Maps = append(ys.Maps, yamlMap{
				Target: m.Target(),
				Source: m.Domain().Start(),
				Size:   m.Domain().Size(),
			})
		}
		doc.Stages = append(doc.Stages, ys)
	}
	return doc, nil
}
