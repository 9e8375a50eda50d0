package pipeline

import (
	"errors"

	"github.com/liznear/seedmap/model"
	"go.uber.org/zap"
)

// ErrNoSeeds is returned when asked for the lowest value of an empty seed list.
var ErrNoSeeds = errors.New("pipeline: no seeds")

// Engine evaluates pipelines. It holds no state between calls, so one Engine can serve
// any number of pipelines.
type Engine struct {
	cfg Config
}

func New(opts ...Option) *Engine {
	cfg := Config{
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{cfg: cfg}
}

var defaultEngine = New()

// MapValue threads v through every stage of p with the default engine.
func MapValue(p Pipeline, v uint64) uint64 {
	return defaultEngine.MapValue(p, v)
}

// ApplyPipeline returns the lowest value reachable from r with the default engine.
func ApplyPipeline(p Pipeline, r model.Range) uint64 {
	return defaultEngine.ApplyPipeline(p, r)
}

// MapValue threads v through every stage of p and returns the final value.
func (e *Engine) MapValue(p Pipeline, v uint64) uint64 {
	for _, s := range p {
		v = s.Lookup(v)
	}
	return v
}

// Trace returns v followed by its value after each stage of p.
func (e *Engine) Trace(p Pipeline, v uint64) []uint64 {
	ret := make([]uint64, 0, len(p)+1)
	ret = append(ret, v)
	for _, s := range p {
		v = s.Lookup(v)
		ret = append(ret, v)
	}
	return ret
}

// ApplyPipeline returns the lowest value reachable from any value in r.
func (e *Engine) ApplyPipeline(p Pipeline, r model.Range) uint64 {
	return e.Propagate(p, r)[0].Start()
}

// Propagate returns the image of r under p as normalized ranges.
//
// It works on intervals only, so the cost depends on the number of maps and ranges
// rather than on the number of values in r.
func (e *Engine) Propagate(p Pipeline, r model.Range) []model.Range {
	unmapped := []model.Range{r}
	var mapped []model.Range

	for _, s := range p {
		// Whatever the previous stage mapped is input for this one.
		unmapped = append(unmapped, mapped...)
		mapped = nil

		for _, m := range s.Maps {
			unmapped, mapped = applyMap(m, Normalize(unmapped), mapped)
		}
		if e.cfg.Debug {
			e.cfg.Logger.Debug("Stage applied",
				zap.String("stage", s.Name),
				zap.Int("unmapped", len(unmapped)),
				zap.Int("mapped", len(mapped)),
			)
		}
	}
	return Normalize(append(unmapped, mapped...))
}

// applyMap splits each range of unmapped against m. Parts m does not cover are
// returned as the new unmapped list; the parts it translates are appended to mapped.
func applyMap(m model.RangeMap, unmapped, mapped []model.Range) ([]model.Range, []model.Range) {
	var rest []model.Range
	for _, r := range unmapped {
		u, t := m.Apply(r)
		rest = append(rest, u...)
		mapped = append(mapped, t...)
	}
	return rest, mapped
}

// LowestValue returns the lowest final value over a list of single seeds.
func (e *Engine) LowestValue(p Pipeline, seeds []uint64) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := e.MapValue(p, seeds[0])
	for _, seed := range seeds[1:] {
		lowest = min(lowest, e.MapValue(p, seed))
	}
	return lowest, nil
}

// LowestInRanges returns the lowest final value reachable from any of the seed ranges.
func (e *Engine) LowestInRanges(p Pipeline, seeds []model.Range) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := e.ApplyPipeline(p, seeds[0])
	for _, r := range seeds[1:] {
		lowest = min(lowest, e.ApplyPipeline(p, r))
	}
	e.cfg.Logger.Debug("Seed ranges evaluated",
		zap.Int("ranges", len(seeds)),
		zap.Uint64("lowest", lowest),
	)
	return lowest, nil
}
