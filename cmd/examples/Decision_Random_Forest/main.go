package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/hgubler/BNForest/pkg/model"
)

// generateClassificationData creates a synthetic dataset with Gaussian blobs
func generateClassificationData(rnd *rand.Rand, nSamples, nFeatures, nClasses int) ([][]float64, []int) {
	X := make([][]float64, nSamples)
	y := make([]int, nSamples)

	// Random centers for each class
	centers := make([][]float64, nClasses)
	for i := 0; i < nClasses; i++ {
		centers[i] = make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			centers[i][j] = rnd.Float64()*10 - 5 // random center between -5 and 5
		}
	}

	// Assign points to clusters with Gaussian noise
	for i := 0; i < nSamples; i++ {
		class := rnd.IntN(nClasses)
		X[i] = make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			X[i][j] = centers[class][j] + 1.5*rnd.NormFloat64()
		}
		y[i] = class
	}

	return X, y
}

func main() {
	rnd := rand.New(rand.NewPCG(1, 2))

	X, y := generateClassificationData(rnd, 5000, 4, 4)
	XTest, yTest := X[4000:], y[4000:]
	X, y = X[:4000], y[:4000]

	tree := model.NewDecisionTreeClassifier(
		model.WithMaxDepth(5),
		model.WithMinSamplesLeaf(6),
		model.WithMaxFeatures(4), // a lone tree sees every feature at each split
		model.WithRandomState(1),
	)
	if err := tree.Fit(X, y); err != nil {
		panic(fmt.Sprintf("tree training failed: %v", err))
	}
	forest := model.NewRandomForest(
		model.WithNEstimators(100),
		model.WithForestMaxDepth(5),
		model.WithForestMinSamplesLeaf(6),
		model.WithForestRandomState(1),
	)
	if err := forest.Fit(X, y); err != nil {
		panic(fmt.Sprintf("forest training failed: %v", err))
	}

	treePreds, err := tree.Predict(XTest)
	if err != nil {
		panic(err)
	}
	forestPreds, err := forest.Predict(XTest)
	if err != nil {
		panic(err)
	}

	fmt.Println("Decision Tree vs Random Forest on Gaussian blobs:")
	for i := 0; i < 10; i++ {
		fmt.Printf("Sample: %.2f, True: %d, Tree: %d, Forest: %d\n", XTest[i], yTest[i], treePreds[i], forestPreds[i])
	}
	fmt.Printf("\nTree accuracy:   %.2f%%\n", model.Accuracy(yTest, treePreds)*100)
	fmt.Printf("Forest accuracy: %.2f%%\n", model.Accuracy(yTest, forestPreds)*100)
}
