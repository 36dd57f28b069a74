package evb

import (
	"fmt"
	"testing"
)

func TestNewTrajectoryValidation(Te *testing.T) {
	_, err := NewTrajectory([]int{0, 1000}, [][]float64{{0.9, 0.4}}, []int{1, 1})
	if err == nil {
		Te.Fatal("expected a MismatchedLengthError")
	}
	merr, ok := err.(*MismatchedLengthError)
	if !ok {
		Te.Fatalf("wrong error type: %T", err)
	}
	if merr.Timesteps != 2 || merr.CIVectors != 1 || merr.Centers != 2 {
		Te.Errorf("error carries wrong lengths: %v", merr)
	}
	fmt.Println("expected failure:", err.Error())
	_, err = NewTrajectory(nil, nil, nil)
	if err == nil {
		Te.Fatal("expected an EmptyTrajectoryError")
	}
	if _, ok := err.(*EmptyTrajectoryError); !ok {
		Te.Errorf("wrong error type: %T", err)
	}
}

func TestAmplitudeSamples(Te *testing.T) {
	civecs := [][]float64{
		{0.9, 0.4, 0.1},
		{0.6, 0.7, 0.2},
	}
	T, err := NewTrajectory([]int{0, 1000}, civecs, []int{1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	first, second, err := T.AmplitudeSamples()
	if err != nil {
		Te.Error(err)
	}
	if first[0] != 0.81 || first[1] != 0.7*0.7 {
		Te.Errorf("dominant samples: %v", first)
	}
	if second[0] != 0.4*0.4 || second[1] != 0.6*0.6 {
		Te.Errorf("secondary samples: %v", second)
	}
	for i := range first {
		if first[i] < second[i] || second[i] < 0 {
			Te.Errorf("ordering invariant violated at frame %d: %v %v", i, first[i], second[i])
		}
	}
}

//A single malformed frame poisons the whole trajectory: the error names
//the frame and no partial samples come back.
func TestAmplitudeSamplesBadFrame(Te *testing.T) {
	civecs := [][]float64{
		{0.9, 0.4},
		{0.99},
		{0.8, 0.5},
	}
	T, err := NewTrajectory([]int{0, 1000, 2000}, civecs, []int{1, 1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	first, second, err := T.AmplitudeSamples()
	if err == nil {
		Te.Fatal("expected an InsufficientStatesError")
	}
	serr, ok := err.(*InsufficientStatesError)
	if !ok {
		Te.Fatalf("wrong error type: %T", err)
	}
	if serr.Frame != 1 {
		Te.Errorf("error blames frame %d, want 1", serr.Frame)
	}
	if first != nil || second != nil {
		Te.Error("partial samples returned alongside the error")
	}
	fmt.Println("expected failure:", err.Error())
}

func TestTimesPs(Te *testing.T) {
	T, err := NewTrajectory([]int{0, 500, 21000}, [][]float64{{1, 0}, {1, 0}, {1, 0}}, []int{1, 1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	ps := T.TimesPs()
	if ps[0] != 0 || ps[1] != 0.5 || ps[2] != 21.0 {
		Te.Errorf("times in ps: %v", ps)
	}
	//reuse a caller-provided buffer
	buf := make([]float64, 8)
	ps2 := T.TimesPs(buf)
	if len(ps2) != 3 || ps2[2] != 21.0 {
		Te.Errorf("buffered times in ps: %v", ps2)
	}
}

func TestTrajectoryHop(Te *testing.T) {
	civecs := [][]float64{{1, 0}, {1, 0}, {1, 0}, {1, 0}, {1, 0}}
	T, err := NewTrajectory([]int{0, 1, 2, 3, 4}, civecs, []int{1, 1, 2, 2, 1})
	if err != nil {
		Te.Fatal(err)
	}
	h := T.HopFunction()
	if !sameInts(h, []int{0, 0, 1, 1, 0}) {
		Te.Errorf("hop function through Trajectory: %v", h)
	}
	if len(h) != T.Len() {
		Te.Error("hop function length differs from trajectory length")
	}
}
