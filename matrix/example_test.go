package matrix_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/metrics"
)

// ExampleMultiply multiplies a 2×3 by a 3×2 matrix on the default engine.
func ExampleMultiply() {
	a := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	b := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 3, 2)

	c, err := matrix.Multiply(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	fmt.Printf("%#v\n", c)

	_, err = matrix.Multiply(a, a)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// {22 28, 49 64}
	// Matrix(row=2, col=2, {22 28, 49 64})
	// true
}

// ExampleMultiplyWith runs a two-worker engine that reports into a fixed
// counter registry.
func ExampleMultiplyWith() {
	reg := metrics.NewFixed(matrix.CounterNames(2)...)
	e := matrix.NewEngine(matrix.WithWorkers(2), matrix.WithCounters(reg))

	a := matrix.MustNew([]float64{1, 2, 3, 4}, 2, 2)
	c, err := matrix.MultiplyWith(context.Background(), e, a, a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	fmt.Print(reg)

	// Output:
	// {7 10, 15 22}
	// matrix.multiply.calls: 1
	// matrix.multiply.errors: 0
	// matrix.pool.spawned: 2
	// matrix.worker.0.tasks: 2
	// matrix.worker.1.tasks: 2
}
