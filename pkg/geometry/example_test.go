package geometry_test

import (
	"fmt"

	"github.com/matzehuels/mandala/pkg/geometry"
)

func ExampleResolve() {
	dims := []string{"Ecology", "Economy", "Governance", "Culture", "Infrastructure", "Education"}
	scales := []string{"Person", "Community", "Institution", "Society"}

	maxRadius := geometry.MaxRadiusFor(len(scales))
	center := geometry.Point{X: 650, Y: 650}
	abs := geometry.ToAbsolute(geometry.Point{X: 0.5, Y: 0}, maxRadius, center)

	p := geometry.Resolve(abs.Sub(center), dims, scales)
	fmt.Println(abs.X, abs.Y)
	fmt.Println(p.Dimension, p.Scale)
	// Output:
	// 950 650
	// Ecology Community
}

func ExampleBoundary_Clamp() {
	b := geometry.NewBoundary(600, 80, 0, 0)
	center := geometry.Point{}
	got := b.Clamp(center, geometry.Point{X: 700}, 1)
	fmt.Println(got.X, got.Y)
	// Output:
	// 560 0
}
