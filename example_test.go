// Package lineprof_test holds runnable examples for the line-profile driver.
package lineprof_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lineprof"
	"github.com/katalvlaran/lineprof/emitter"
	"github.com/katalvlaran/lineprof/profile"
)

// ExampleCompute computes three samples of a uniform, static cloud: the
// line centre and two far-wing velocities where the cloud is transparent.
func ExampleCompute() {
	tab, err := emitter.NewTable("toy", 28,
		[]emitter.Level{{Energy: 10, Weight: 1}, {Energy: 14.8, Weight: 3}},
		[]emitter.Line{{Upper: 1, Lower: 0, EinsteinA: 1e-5, Freq: 1e11}},
		emitter.WithConstantPartitionFunc(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := lineprof.Compute(context.Background(), tab, 1, 0, 3e16,
		profile.Constant(1e4), profile.Constant(20),
		lineprof.WithVelocities(-500e5, 0, 500e5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("wings: %.1f K, %.1f K\n", p.TB[0], p.TB[2])
	fmt.Println("centre brighter:", p.TB[1] > p.TB[0] && p.TB[1] > p.TB[2])
	// Output:
	// wings: 0.0 K, 0.0 K
	// centre brighter: true
}
