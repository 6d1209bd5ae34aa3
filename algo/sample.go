// File: algo/sample.go
// License: Apache-2.0

package algo

import (
	"math/rand"

	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/view"
)

// RandomSample partitions the array into a uniformly random subset of
// min(k, Len()) elements and its complement, in one pass (selection
// sampling). Selected elements are appended to samples, the rest to
// others; relative order is preserved within each output. When k >= Len()
// every element is selected and others stays empty. k <= 0 selects
// nothing. rng may be nil, in which case the shared global source is used.
//
// samples and others must hold elements of the same type as the input;
// the caller is responsible for passing compatible containers.
func RandomSample(c api.Container, desc api.TypeDesc, k int, samples, others api.Container, rng *rand.Rand) {
	v := view.New(c, desc)
	sampleIt := view.NewBackInserter(samples, desc)
	otherIt := view.NewBackInserter(others, desc)

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	rest := k
	if rest < 0 {
		rest = 0
	}
	for it := v.Begin(); !it.AtEnd(); it.Next() {
		restLen := v.Len() - it.Index()
		if intn(restLen) < rest {
			rest--
			sampleIt.Push(it.Deref().Bytes())
		} else {
			otherIt.Push(it.Deref().Bytes())
		}
	}
}
