// Package split partitions sample indices into training and validation sets.
package split

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Split names the partition a sample belongs to.
type Split int

const (
	Train Split = iota
	Val
)

// All lists the splits in directory order.
var All = []Split{Train, Val}

func (s Split) String() string {
	switch s {
	case Train:
		return "train"
	case Val:
		return "val"
	default:
		return fmt.Sprintf("Split(%d)", int(s))
	}
}

// Assignment maps a sample index to its split.
type Assignment []Split

// TrainCount returns how many of n samples go to training at the given
// validation ratio: round(n·(1−ratio)).
func TrainCount(n int, valRatio float64) int {
	return int(math.Round(float64(n) * (1 - valRatio)))
}

// Assign shuffles the indices 0..n-1 once and cuts the permutation at
// TrainCount: indices in the first part train, the rest validate. The
// realized ratio therefore matches valRatio up to rounding, independent of
// how samples are later generated.
func Assign(n int, valRatio float64, rng *rand.Rand) (Assignment, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample count %d is negative", n)
	}
	if valRatio < 0 || valRatio > 1 || math.IsNaN(valRatio) {
		return nil, fmt.Errorf("validation ratio %v outside [0,1]", valRatio)
	}

	cut := TrainCount(n, valRatio)
	a := make(Assignment, n)
	for pos, idx := range rng.Perm(n) {
		if pos < cut {
			a[idx] = Train
		} else {
			a[idx] = Val
		}
	}
	return a, nil
}

// Counts returns the number of train and validation indices.
func (a Assignment) Counts() (train, val int) {
	for _, s := range a {
		if s == Train {
			train++
		} else {
			val++
		}
	}
	return train, val
}
