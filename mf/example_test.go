package mf_test

import (
	"fmt"

	"github.com/katalvlaran/fiskit/mf"
)

// ExampleTriangularTerms partitions [0,1] into three labels with no overlap:
// each term's feet meet its neighbors' exactly and the peaks are centered.
func ExampleTriangularTerms() {
	terms := mf.TriangularTerms([]string{"low", "average", "high"}, 0, 1, 0)
	for _, t := range terms {
		fmt.Printf("%-7s a=%.4f b=%.4f c=%.4f\n", t.Label, t.A, t.B, t.C)
	}
	// Output:
	// low     a=0.0000 b=0.0000 c=0.3333
	// average a=0.3333 b=0.5000 c=0.6667
	// high    a=0.6667 b=1.0000 c=1.0000
}

// ExampleTrapezoidTerms shows the ratio-controlled flat top: at ratio = 0.5
// the top of each trapezoid is half as wide as its base.
func ExampleTrapezoidTerms() {
	terms := mf.TrapezoidTerms([]string{"low", "average", "high"}, 0, 1, 0.5, 0)
	for _, t := range terms {
		fmt.Printf("%-7s a=%.4f b=%.4f c=%.4f d=%.4f\n", t.Label, t.A, t.B, t.C, t.D)
	}
	// Output:
	// low     a=0.0000 b=0.0000 c=0.1667 d=0.3333
	// average a=0.3333 b=0.4167 c=0.5833 d=0.6667
	// high    a=0.6667 b=0.8333 c=1.0000 d=1.0000
}

// ExampleSynthesize dispatches by shape and returns terms in label order.
func ExampleSynthesize() {
	terms, err := mf.Synthesize(mf.ShapeGaussian, []string{"cold", "warm", "hot"}, 0, 30, 0.25, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, t := range terms {
		fmt.Printf("%-5s membership(15)=%.3f\n", t.Name(), t.Membership(15))
	}
	// Output:
	// cold  membership(15)=0.002
	// warm  membership(15)=1.000
	// hot   membership(15)=0.002
}
