package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/hgubler/BNForest/pkg/model"
)

// generateHeteroscedasticData draws x uniform in [0,10] and
// y = 2x + noise whose spread grows with x.
func generateHeteroscedasticData(rnd *rand.Rand, n int) (X [][]float64, y []float64) {
	X = make([][]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x := rnd.Float64() * 10
		X[i] = []float64{x}
		y[i] = 2*x + (0.2+0.3*x)*rnd.NormFloat64()
	}
	return
}

func main() {
	rnd := rand.New(rand.NewPCG(7, 7))

	fmt.Println("=== Quantile Regression Forest Demo ===")

	// Step 1. Generate dataset
	X, y := generateHeteroscedasticData(rnd, 2000)
	XTrain, yTrain := X[:1500], y[:1500]
	XTest, yTest := X[1500:], y[1500:]
	fmt.Printf("Train size: %d, Test size: %d\n", len(XTrain), len(XTest))

	// Step 2. Fit
	qf := model.NewQuantileForest(
		model.WithNEstimators(100),
		model.WithForestMaxDepth(6),
		model.WithForestMinSamplesLeaf(6),
		model.WithForestRandomState(7),
	)
	if err := qf.Fit(XTrain, yTrain); err != nil {
		panic(fmt.Sprintf("training failed: %v", err))
	}

	// Step 3. Predict the 10%, 50% and 90% quantiles
	levels := []float64{0.1, 0.5, 0.9}
	q, err := qf.PredictQuantiles(XTest, levels)
	if err != nil {
		panic(err)
	}

	fmt.Println("\nFirst 10 test rows (x → [q10, q50, q90] vs y):")
	for i := 0; i < 10; i++ {
		fmt.Printf("  x=%5.2f → [%6.2f, %6.2f, %6.2f] y=%6.2f\n", XTest[i][0], q[i][0], q[i][1], q[i][2], yTest[i])
	}

	// Step 4. Interval coverage and pinball loss per level
	covered := 0
	for i := range yTest {
		if yTest[i] >= q[i][0] && yTest[i] <= q[i][2] {
			covered++
		}
	}
	fmt.Printf("\n80%% interval coverage: %.1f%% (%d/%d)\n", 100*float64(covered)/float64(len(yTest)), covered, len(yTest))
	for j, tau := range levels {
		col := make([]float64, len(q))
		for i := range q {
			col[i] = q[i][j]
		}
		fmt.Printf("Pinball loss at %.1f: %.4f\n", tau, model.PinballLoss(yTest, col, tau))
	}
}
