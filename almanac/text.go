package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/liznear/seedmap/model"
	"github.com/liznear/seedmap/pipeline"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = "map:"
)

// Parse reads the text form of an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each line under a "<name> map:" header is a "target source size" triple. Blank lines
// end a stage.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a       Almanac
		stage   *pipeline.Stage
		lineNum int
	)
	flush := func() {
		if stage != nil {
			a.Pipeline = append(a.Pipeline, *stage)
			stage = nil
		}
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNum++
		line := strings.TrimSpace(s.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, seedsPrefix):
			if a.Seeds != nil {
				return nil, fmt.Errorf("%w: line %d: duplicate seeds", ErrSyntax, lineNum)
			}
			seeds, err := parseNumbers(strings.Fields(strings.TrimPrefix(line, seedsPrefix)))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNum, err)
			}
			a.Seeds = seeds
		case strings.HasSuffix(line, mapSuffix):
			flush()
			stage = &pipeline.Stage{Name: strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))}
		default:
			if stage == nil {
				return nil, fmt.Errorf("%w: line %d: mapping outside of a map section", ErrSyntax, lineNum)
			}
			m, err := parseRangeMap(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNum, err)
			}
			stage.Maps = append(stage.Maps, m)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("almanac: fail to read: %w", err)
	}
	flush()
	return validate(&a)
}

func parseRangeMap(line string) (model.RangeMap, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return model.RangeMap{}, fmt.Errorf("want 3 numbers, got %d", len(fields))
	}
	nums, err := parseNumbers(fields)
	if err != nil {
		return model.RangeMap{}, err
	}
	return model.NewRangeMap(nums[1], nums[2], nums[0])
}

func parseNumbers(fields []string) ([]uint64, error) {
	ret := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		ret = append(ret, n)
	}
	return ret, nil
}
