package hmm_test

import (
	"fmt"

	"github.com/katalvlaran/hmmeval/hmm"
	"github.com/katalvlaran/hmmeval/probtable"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleModel_Forward
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The weather is hidden (rain, cloudy); we only see a friend's mood.
//	Given "happy" then "grumpy", how likely was that sequence?
//
// Both algorithms agree:
//
//	Σ over 4 paths of initial(s1)·emission(happy,s1)·transition(s2,s1)·emission(grumpy,s2) = 0.192
func ExampleModel_Forward() {
	emission, _ := probtable.Parse([][]string{
		{"Happy", "Grumpy"},
		{"Rain", "0.6", "0.4"},
		{"Cloudy", "0.9", "0.1"},
	})
	transition, _ := probtable.Parse([][]string{
		{"Rain", "Cloudy"},
		{"Rain", "0.7", "0.3"},
		{"Cloudy", "0.4", "0.6"},
	})
	initial, _ := probtable.ParseDistribution([][]string{
		{"Rain", "0.5"},
		{"Cloudy", "0.5"},
	})

	m, err := hmm.New(emission, transition, initial)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	obs := []string{"happy", "grumpy"}
	ex, _ := m.Exhaustive(obs)
	fw, _ := m.Forward(obs)
	fmt.Printf("exhaustive=%.3f\nforward=%.3f\n", ex, fw)
	// Output:
	// exhaustive=0.192
	// forward=0.192
}

// ExampleModel_Trellis prints the α rows of the same model.
func ExampleModel_Trellis() {
	emission, _ := probtable.Parse([][]string{{"happy", "grumpy"}, {"rain", "0.6", "0.4"}, {"cloudy", "0.9", "0.1"}})
	transition, _ := probtable.Parse([][]string{{"rain", "cloudy"}, {"rain", "0.7", "0.3"}, {"cloudy", "0.4", "0.6"}})
	initial, _ := probtable.ParseDistribution([][]string{{"rain", "0.5"}, {"cloudy", "0.5"}})
	m, _ := hmm.New(emission, transition, initial)

	rows, _ := m.Trellis([]string{"happy", "grumpy"})
	for t, row := range rows {
		fmt.Printf("t=%d rain=%.3f cloudy=%.3f\n", t+1, row[0], row[1])
	}
	// Output:
	// t=1 rain=0.300 cloudy=0.450
	// t=2 rain=0.156 cloudy=0.036
}
