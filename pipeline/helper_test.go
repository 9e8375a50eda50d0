package pipeline

import (
	"math/rand"

	"github.com/liznear/seedmap/model"
)

// examplePipeline is the seed-to-location chain of the canonical almanac.
func examplePipeline() Pipeline {
	stage := func(name string, triples ...[3]uint64) Stage {
		s := Stage{Name: name}
		for _, t := range triples {
			s.Maps = append(s.Maps, model.MustNewRangeMap(t[1], t[2], t[0]))
		}
		return s
	}
	return Pipeline{
		stage("seed-to-soil", [3]uint64{50, 98, 2}, [3]uint64{52, 50, 48}),
		stage("soil-to-fertilizer", [3]uint64{0, 15, 37}, [3]uint64{37, 52, 2}, [3]uint64{39, 0, 15}),
		stage("fertilizer-to-water", [3]uint64{49, 53, 8}, [3]uint64{0, 11, 42}, [3]uint64{42, 0, 7}, [3]uint64{57, 7, 4}),
		stage("water-to-light", [3]uint64{88, 18, 7}, [3]uint64{18, 25, 70}),
		stage("light-to-temperature", [3]uint64{45, 77, 23}, [3]uint64{81, 45, 19}, [3]uint64{68, 64, 13}),
		stage("temperature-to-humidity", [3]uint64{0, 69, 1}, [3]uint64{1, 0, 69}),
		stage("humidity-to-location", [3]uint64{60, 56, 37}, [3]uint64{56, 93, 4}),
	}
}

// randomPipeline builds stages whose domains partition part of [0, span) and whose
// targets land anywhere in [0, 2*span).
func randomPipeline(rnd *rand.Rand, stages int, span uint64) Pipeline {
	var p Pipeline
	for i := 0; i < stages; i++ {
		var s Stage
		for start := uint64(0); start < span; {
			size := 1 + uint64(rnd.Intn(6))
			if start+size > span {
				size = span - start
			}
			if rnd.Intn(3) > 0 {
				s.Maps = append(s.Maps, model.MustNewRangeMap(start, size, uint64(rnd.Intn(int(2*span)))))
			}
			start += size
		}
		rnd.Shuffle(len(s.Maps), func(i, j int) { s.Maps[i], s.Maps[j] = s.Maps[j], s.Maps[i] })
		p = append(p, s)
	}
	return p
}
