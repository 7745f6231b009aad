package service

const (
	// MinHeadcount is the lower bound of the headcount slider.
	MinHeadcount = 1
	// MaxHeadcount is the upper bound of the headcount slider.
	MaxHeadcount = 1000
	// DefaultHeadcount is the slider value a new session starts with.
	DefaultHeadcount = 100
)

// SliderMark is a labelled position on the headcount slider.
type SliderMark struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// SliderMarks are the labelled positions shown under the slider.
var SliderMarks = []SliderMark{
	{Value: 1, Label: "1"},
	{Value: 100, Label: "100"},
	{Value: 500, Label: "500"},
	{Value: 1000, Label: "1000+"},
}

// Step returns the slider granularity at value v.
func Step(v int) int {
	switch {
	case v < 10:
		return 1
	case v < 100:
		return 10
	default:
		return 100
	}
}

// ClampHeadcount bounds v to [MinHeadcount, MaxHeadcount].
func ClampHeadcount(v int) int {
	if v < MinHeadcount {
		return MinHeadcount
	}
	if v > MaxHeadcount {
		return MaxHeadcount
	}
	return v
}

// Quantize clamps v and floors it to the step for its magnitude,
// e.g. 7 -> 7, 47 -> 40, 733 -> 700.
func Quantize(v int) int {
	v = ClampHeadcount(v)
	step := Step(v)
	return v / step * step
}
