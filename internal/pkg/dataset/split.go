package dataset

import (
	"math"
	"math/rand"
)

// DefaultSeed makes repeated runs over the same input reproducible.
const DefaultSeed int64 = 42

// ratioSumTolerance is the allowed deviation of the 3-way ratio sum from 1.0.
const ratioSumTolerance = 1e-3

// Split names.
const (
	SplitTrain = "train"
	SplitVal   = "val"
	SplitTest  = "test"
)

// Ratios defines the requested split proportions.
// The 2-way form holds train/test, the 3-way form train/val/test.
type Ratios struct {
	Train    float64
	Val      float64
	Test     float64
	threeWay bool
}

// NewTwoWayRatios derives a train/test split from the train ratio.
func NewTwoWayRatios(train float64) (Ratios, error) {
	if err := checkRatio("train", train); err != nil {
		return Ratios{}, err
	}
	return Ratios{Train: train, Test: 1 - train}, nil
}

// NewThreeWayRatios defines a train/val/test split, values must sum to 1.
func NewThreeWayRatios(train, val, test float64) (Ratios, error) {
	for _, item := range []struct {
		name  string
		value float64
	}{{"train", train}, {"val", val}, {"test", test}} {
		if err := checkRatio(item.name, item.value); err != nil {
			return Ratios{}, err
		}
	}

	if sum := train + val + test; math.Abs(sum-1.0) > ratioSumTolerance {
		return Ratios{}, NewInvalidRatioError("ratios must sum to 1.0, the sum is %.3f", sum)
	}

	return Ratios{Train: train, Val: val, Test: test, threeWay: true}, nil
}

func (r Ratios) ThreeWay() bool {
	return r.threeWay
}

// SplitNames in partition order.
func (r Ratios) SplitNames() []string {
	if r.threeWay {
		return []string{SplitTrain, SplitVal, SplitTest}
	}
	return []string{SplitTrain, SplitTest}
}

func checkRatio(name string, value float64) error {
	if value <= 0.0 || value >= 1.0 {
		return NewInvalidRatioError(`the %s ratio must be between 0 and 1 exclusive, found %g`, name, value)
	}
	return nil
}

// Split is one named partition of the dataset.
type Split struct {
	Name  string
	Pairs []SamplePair
}

// Partition shuffles the pairs with the seed and slices them into subsets.
// It is a pure decision, no filesystem access, see Builder for the I/O part.
//
// Every subset gets at least one sample: floor counts are clamped to 1 and,
// in the 3-way case, one unit is borrowed from train (then val) when nothing
// remains for test. The counts always sum to the input size exactly, so the
// realized proportions may deviate from the requested ratios for small inputs.
func Partition(pairs []SamplePair, ratios Ratios, seed int64) ([]Split, error) {
	total := len(pairs)
	if total == 0 {
		return nil, &InsufficientSamplesError{Total: 0, Splits: len(ratios.SplitNames())}
	}

	shuffled := make([]SamplePair, total)
	copy(shuffled, pairs)
	random := rand.New(rand.NewSource(seed)) // nolint: gosec
	random.Shuffle(total, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if !ratios.ThreeWay() {
		trainCount, err := twoWayTrainCount(total, ratios)
		if err != nil {
			return nil, err
		}
		return []Split{
			{Name: SplitTrain, Pairs: shuffled[:trainCount]},
			{Name: SplitTest, Pairs: shuffled[trainCount:]},
		}, nil
	}

	trainCount, valCount, err := threeWayCounts(total, ratios)
	if err != nil {
		return nil, err
	}
	return []Split{
		{Name: SplitTrain, Pairs: shuffled[:trainCount]},
		{Name: SplitVal, Pairs: shuffled[trainCount : trainCount+valCount]},
		{Name: SplitTest, Pairs: shuffled[trainCount+valCount:]},
	}, nil
}

func twoWayTrainCount(total int, ratios Ratios) (int, error) {
	if total < 2 {
		return 0, &InsufficientSamplesError{Total: total, Splits: 2}
	}

	trainCount := int(float64(total) * ratios.Train)
	if trainCount < 1 {
		trainCount = 1
	}
	if trainCount > total-1 {
		trainCount = total - 1
	}
	return trainCount, nil
}

func threeWayCounts(total int, ratios Ratios) (trainCount, valCount int, err error) {
	trainCount = int(float64(total) * ratios.Train)
	if trainCount < 1 {
		trainCount = 1
	}
	valCount = int(float64(total) * ratios.Val)
	if valCount < 1 {
		valCount = 1
	}

	// Nothing left for test -> borrow one sample, from train first
	if total-trainCount-valCount <= 0 {
		switch {
		case trainCount > 1:
			trainCount--
		case valCount > 1:
			valCount--
		default:
			return 0, 0, &InsufficientSamplesError{Total: total, Splits: 3}
		}
	}

	// Reconciliation: the remainder is the test count, it must not be empty
	if total-trainCount-valCount < 1 {
		return 0, 0, &InsufficientSamplesError{Total: total, Splits: 3}
	}

	return trainCount, valCount, nil
}
