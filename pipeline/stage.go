package pipeline

import "github.com/liznear/seedmap/model"

// Stage is one level of the pipeline, e.g. seed-to-soil.
//
// The domains of Maps must be pairwise disjoint. Values outside every domain pass
// through the stage unchanged.
type Stage struct {
	Name string
	Maps []model.RangeMap
}

func NewStage(name string, maps ...model.RangeMap) Stage {
	return Stage{Name: name, Maps: maps}
}

// Lookup returns the image of v in the stage, or v itself if no map contains it.
func (s Stage) Lookup(v uint64) uint64 {
	for _, m := range s.Maps {
		if m.Contains(v) {
			return m.Get(v)
		}
	}
	return v
}

// Pipeline is an ordered sequence of stages applied left to right.
type Pipeline []Stage
