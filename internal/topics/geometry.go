package topics

import (
	"fmt"
	"math"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

// shape is the diagram payload attached to geometry questions.
type shape struct {
	Kind   string             `json:"kind"`
	Sides  map[string]float64 `json:"sides,omitempty"`
	Angles map[string]float64 `json:"angles,omitempty"`
	Hidden string             `json:"hidden,omitempty"`
}

// pythagoreanTriples are primitive (a, b, c) with a² + b² = c².
var pythagoreanTriples = [][3]int{
	{3, 4, 5}, {5, 12, 13}, {8, 15, 17}, {7, 24, 25}, {20, 21, 29}, {9, 40, 41},
}

func pythagoras(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1, 2:
		t := rng.Pick(r, pythagoreanTriples)
		k := 1
		if t[2] <= 13 {
			k = r.Int(1, 4)
		}
		a, b, c := t[0]*k, t[1]*k, t[2]*k
		if r.Bool() {
			a, b = b, a
		}
		diagram := shape{Kind: "right-triangle", Sides: map[string]float64{"a": float64(a), "b": float64(b), "c": float64(c)}}
		if level == 1 {
			diagram.Hidden = "c"
			q := intQuestion(r, Pythagoras, level,
				fmt.Sprintf("A right-angled triangle has shorter sides %d cm and %d cm. Find the hypotenuse in cm.", a, b), c,
				fmt.Sprintf("c² = %d² + %d² = %d, so c = %d", a, b, c*c, c))
			return withDiagram(q, diagram), nil
		}
		diagram.Hidden = "b"
		q := intQuestion(r, Pythagoras, level,
			fmt.Sprintf("A right-angled triangle has hypotenuse %d cm and one side %d cm. Find the other side in cm.", c, a), b,
			fmt.Sprintf("b² = %d² - %d² = %d, so b = %d", c, a, b*b, b))
		return withDiagram(q, diagram), nil
	}

	a, b := r.Int(2, 20), r.Int(2, 20)
	c := math.Hypot(float64(a), float64(b))
	q := decimalQuestion(r, Pythagoras, level,
		fmt.Sprintf("A right-angled triangle has shorter sides %d cm and %d cm. Find the hypotenuse to 1 decimal place.", a, b), c, 1,
		fmt.Sprintf("c = √(%d² + %d²) = √%d = %s", a, b, a*a+b*b, mathfmt.Fixed(c, 3)))
	return withDiagram(q, shape{Kind: "right-triangle", Sides: map[string]float64{"a": float64(a), "b": float64(b)}, Hidden: "c"}), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func trigRatios(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	theta := r.Int(10, 80)
	switch level {
	case 1, 2:
		names := []string{"opposite-from-hypotenuse", "adjacent-from-hypotenuse"}
		if level == 2 {
			names = []string{"opposite-from-adjacent", "hypotenuse-from-opposite"}
		}
		given := float64(r.Int(4, 20))
		var text, why string
		var v float64
		switch template(r, w, names...) {
		case "opposite-from-hypotenuse":
			v = given * math.Sin(radians(float64(theta)))
			text = fmt.Sprintf("In a right-angled triangle the hypotenuse is %g cm and one angle is %d°. Find the side opposite the angle to 1 decimal place.", given, theta)
			why = fmt.Sprintf("opposite = %g × sin %d°", given, theta)
		case "adjacent-from-hypotenuse":
			v = given * math.Cos(radians(float64(theta)))
			text = fmt.Sprintf("In a right-angled triangle the hypotenuse is %g cm and one angle is %d°. Find the side adjacent to the angle to 1 decimal place.", given, theta)
			why = fmt.Sprintf("adjacent = %g × cos %d°", given, theta)
		case "opposite-from-adjacent":
			v = given * math.Tan(radians(float64(theta)))
			text = fmt.Sprintf("In a right-angled triangle the side adjacent to a %d° angle is %g cm. Find the opposite side to 1 decimal place.", theta, given)
			why = fmt.Sprintf("opposite = %g × tan %d°", given, theta)
		default:
			v = given / math.Sin(radians(float64(theta)))
			text = fmt.Sprintf("In a right-angled triangle the side opposite a %d° angle is %g cm. Find the hypotenuse to 1 decimal place.", theta, given)
			why = fmt.Sprintf("hypotenuse = %g ÷ sin %d°", given, theta)
		}
		q := decimalQuestion(r, TrigRatios, level, text, v, 1, why+" = "+mathfmt.Fixed(v, 3))
		return withDiagram(q, shape{Kind: "right-triangle", Angles: map[string]float64{"theta": float64(theta)}}), nil
	}

	opp, adj := r.Int(2, 20), r.Int(2, 20)
	deg := math.Atan2(float64(opp), float64(adj)) * 180 / math.Pi
	q := decimalQuestion(r, TrigRatios, level,
		fmt.Sprintf("A right-angled triangle has opposite side %d cm and adjacent side %d cm. Find the angle to 1 decimal place.", opp, adj),
		deg, 1,
		fmt.Sprintf("θ = tan⁻¹(%d/%d) = %s°", opp, adj, mathfmt.Fixed(deg, 3)))
	return withDiagram(q, shape{Kind: "right-triangle", Sides: map[string]float64{"opposite": float64(opp), "adjacent": float64(adj)}, Hidden: "theta"}), nil
}

// exactTrig holds sin, cos and tan of special angles. An empty tan marks
// an undefined value.
var exactTrig = map[int][3]string{
	0:   {"0", "1", "0"},
	30:  {"1/2", "√3/2", "√3/3"},
	45:  {"√2/2", "√2/2", "1"},
	60:  {"√3/2", "1/2", "√3"},
	90:  {"1", "0", ""},
	120: {"√3/2", "-1/2", "-√3"},
	135: {"√2/2", "-√2/2", "-1"},
	150: {"1/2", "-√3/2", "-√3/3"},
	180: {"0", "-1", "0"},
	210: {"-1/2", "-√3/2", "√3/3"},
	225: {"-√2/2", "-√2/2", "1"},
	240: {"-√3/2", "-1/2", "√3"},
	270: {"-1", "0", ""},
	300: {"-√3/2", "1/2", "-√3"},
	315: {"-√2/2", "√2/2", "-1"},
	330: {"-1/2", "√3/2", "-√3/3"},
}

var trigFunctions = []string{"sin", "cos", "tan"}

func trigExactValues(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	angles := []int{0, 30, 45, 60, 90}
	if level >= 2 {
		angles = []int{120, 135, 150, 180, 210, 225, 240, 270, 300, 315, 330}
	}
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		deg := rng.Pick(r, angles)
		fn := r.Intn(3)
		ans := exactTrig[deg][fn]
		if ans == "" {
			continue
		}
		return ruleQuestion(r, TrigExactValues, level,
			fmt.Sprintf("Write down the exact value of %s %d°.", trigFunctions[fn], deg), ans, answer.RuleSurd,
			fmt.Sprintf("%s %d° = %s", trigFunctions[fn], deg, ans)), nil
	}
	return ruleQuestion(r, TrigExactValues, level, "Write down the exact value of sin 30°.", "1/2", answer.RuleSurd,
		"sin 30° = 1/2"), nil
}

func area(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	var names []string
	switch level {
	case 1:
		names = []string{"rectangle", "triangle"}
	case 2:
		names = []string{"parallelogram", "trapezium"}
	default:
		names = []string{"circle", "compound"}
	}

	a, b, h := r.Int(2, 20), r.Int(2, 20), r.Int(2, 15)
	switch kind := template(r, w, names...); kind {
	case "rectangle":
		q := intQuestion(r, Area, level, fmt.Sprintf("Find the area of a rectangle %d cm by %d cm, in cm².", a, b), a*b,
			fmt.Sprintf("Area = %d × %d = %d", a, b, a*b))
		return withDiagram(q, shape{Kind: kind, Sides: map[string]float64{"length": float64(a), "width": float64(b)}}), nil
	case "triangle":
		v := float64(a*h) / 2
		q := exactDecimalQuestion(r, Area, level, fmt.Sprintf("Find the area of a triangle with base %d cm and height %d cm, in cm².", a, h), v,
			fmt.Sprintf("Area = ½ × %d × %d = %s", a, h, mathfmt.CleanDecimal(v)))
		return withDiagram(q, shape{Kind: kind, Sides: map[string]float64{"base": float64(a), "height": float64(h)}}), nil
	case "parallelogram":
		q := intQuestion(r, Area, level, fmt.Sprintf("Find the area of a parallelogram with base %d cm and perpendicular height %d cm, in cm².", a, h), a*h,
			fmt.Sprintf("Area = base × height = %d × %d = %d", a, h, a*h))
		return withDiagram(q, shape{Kind: kind, Sides: map[string]float64{"base": float64(a), "height": float64(h)}}), nil
	case "trapezium":
		if a == b {
			b++
		}
		v := float64((a+b)*h) / 2
		q := exactDecimalQuestion(r, Area, level, fmt.Sprintf("Find the area of a trapezium with parallel sides %d cm and %d cm and height %d cm, in cm².", a, b, h), v,
			fmt.Sprintf("Area = ½ × (%d + %d) × %d = %s", a, b, h, mathfmt.CleanDecimal(v)))
		return withDiagram(q, shape{Kind: kind, Sides: map[string]float64{"a": float64(a), "b": float64(b), "height": float64(h)}}), nil
	case "circle":
		radius := r.Int(1, 15)
		v := math.Pi * float64(radius*radius)
		q := decimalQuestion(r, Area, level, fmt.Sprintf("Find the area of a circle with radius %d cm, to 1 decimal place.", radius), v, 1,
			fmt.Sprintf("Area = π × %d² = %s", radius, mathfmt.Fixed(v, 3)))
		return withDiagram(q, shape{Kind: kind, Sides: map[string]float64{"radius": float64(radius)}}), nil
	default:
		// An L-shape: a big rectangle with a corner rectangle removed.
		cw, ch := r.Int(1, a-1), r.Int(1, b-1)
		v := a*b - cw*ch
		q := intQuestion(r, Area, level,
			fmt.Sprintf("An L-shape is a %d cm by %d cm rectangle with a %d cm by %d cm rectangle cut from one corner. Find its area in cm².", a, b, cw, ch), v,
			fmt.Sprintf("%d × %d - %d × %d = %d", a, b, cw, ch, v))
		return withDiagram(q, shape{Kind: "compound", Sides: map[string]float64{"length": float64(a), "width": float64(b), "cutLength": float64(cw), "cutWidth": float64(ch)}}), nil
	}
}

// regularPolygons have a whole-number exterior angle.
var regularPolygons = map[int]string{
	3: "equilateral triangle", 4: "square", 5: "regular pentagon", 6: "regular hexagon",
	8: "regular octagon", 9: "regular nonagon", 10: "regular decagon", 12: "regular dodecagon",
}

var polygonSides = []int{3, 4, 5, 6, 8, 9, 10, 12}

func angles(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		if template(r, w, "straight-line", "around-point") == "straight-line" {
			a := r.Int(10, 170)
			return intQuestion(r, Angles, level,
				fmt.Sprintf("Two angles on a straight line are %d° and x°. Find x.", a), 180-a,
				fmt.Sprintf("Angles on a straight line add up to 180°: 180 - %d = %d", a, 180-a)), nil
		}
		a := r.Int(40, 170)
		b := r.Int(40, 170)
		return intQuestion(r, Angles, level,
			fmt.Sprintf("Three angles around a point are %d°, %d° and x°. Find x.", a, b), 360-a-b,
			fmt.Sprintf("Angles around a point add up to 360°: 360 - %d - %d = %d", a, b, 360-a-b)), nil
	case 2:
		if template(r, w, "triangle", "isosceles") == "triangle" {
			a := r.Int(20, 100)
			b := r.Int(20, 150-a)
			return intQuestion(r, Angles, level,
				fmt.Sprintf("Two angles in a triangle are %d° and %d°. Find the third angle in degrees.", a, b), 180-a-b,
				fmt.Sprintf("Angles in a triangle add up to 180°: 180 - %d - %d = %d", a, b, 180-a-b)), nil
		}
		apex := 2 * r.Int(5, 70)
		base := (180 - apex) / 2
		return intQuestion(r, Angles, level,
			fmt.Sprintf("An isosceles triangle has an apex angle of %d°. Find one of its base angles in degrees.", apex), base,
			fmt.Sprintf("The base angles are equal: (180 - %d) ÷ 2 = %d", apex, base)), nil
	}

	n := rng.Pick(r, polygonSides)
	name := regularPolygons[n]
	if template(r, w, "interior", "interior-sum") == "interior" {
		interior := 180 - 360/n
		return intQuestion(r, Angles, level,
			fmt.Sprintf("Find the size of one interior angle of a %s in degrees.", name), interior,
			fmt.Sprintf("Exterior angle = 360 ÷ %d = %d, so interior = 180 - %d = %d", n, 360/n, 360/n, interior)), nil
	}
	sum := (n - 2) * 180
	return intQuestion(r, Angles, level,
		fmt.Sprintf("Find the sum of the interior angles of a polygon with %d sides, in degrees.", n), sum,
		fmt.Sprintf("(%d - 2) × 180 = %d", n, sum)), nil
}

func circles(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	radius := r.Int(2, 20)
	switch level {
	case 1:
		if template(r, w, "radius", "diameter") == "radius" {
			v := 2 * math.Pi * float64(radius)
			return decimalQuestion(r, Circles, level,
				fmt.Sprintf("Find the circumference of a circle with radius %d cm, to 1 decimal place.", radius), v, 1,
				fmt.Sprintf("C = 2π × %d = %s", radius, mathfmt.Fixed(v, 3))), nil
		}
		d := 2 * radius
		v := math.Pi * float64(d)
		return decimalQuestion(r, Circles, level,
			fmt.Sprintf("Find the circumference of a circle with diameter %d cm, to 1 decimal place.", d), v, 1,
			fmt.Sprintf("C = π × %d = %s", d, mathfmt.Fixed(v, 3))), nil
	case 2:
		if template(r, w, "decimal", "in-terms-of-pi") == "decimal" {
			v := math.Pi * float64(radius*radius)
			return decimalQuestion(r, Circles, level,
				fmt.Sprintf("Find the area of a circle with radius %d cm, to 1 decimal place.", radius), v, 1,
				fmt.Sprintf("A = π × %d² = %s", radius, mathfmt.Fixed(v, 3))), nil
		}
		ans := fmt.Sprintf("%dπ", radius*radius)
		return newQuestion(r, Circles, level,
			fmt.Sprintf("Find the area of a circle with radius %d cm. Give your answer in terms of π.", radius), ans,
			answer.New(ans, answer.WithAlternates(fmt.Sprintf("%dpi", radius*radius), fmt.Sprintf("%d*pi", radius*radius))),
			fmt.Sprintf("A = π × %d² = %s", radius, ans)), nil
	}

	theta := rng.Pick(r, []int{30, 40, 45, 60, 72, 80, 90, 120, 135, 150, 240, 270})
	frac := float64(theta) / 360
	if template(r, w, "arc", "sector") == "arc" {
		v := frac * 2 * math.Pi * float64(radius)
		return decimalQuestion(r, Circles, level,
			fmt.Sprintf("Find the length of an arc with angle %d° in a circle of radius %d cm, to 1 decimal place.", theta, radius), v, 1,
			fmt.Sprintf("Arc = %d/360 × 2π × %d = %s", theta, radius, mathfmt.Fixed(v, 3))), nil
	}
	v := frac * math.Pi * float64(radius*radius)
	return decimalQuestion(r, Circles, level,
		fmt.Sprintf("Find the area of a sector with angle %d° in a circle of radius %d cm, to 1 decimal place.", theta, radius), v, 1,
		fmt.Sprintf("Sector = %d/360 × π × %d² = %s", theta, radius, mathfmt.Fixed(v, 3))), nil
}

func volume(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	a, b, c := r.Int(2, 15), r.Int(2, 15), r.Int(2, 15)
	switch level {
	case 1:
		return intQuestion(r, Volume, level,
			fmt.Sprintf("Find the volume of a cuboid %d cm by %d cm by %d cm, in cm³.", a, b, c), a*b*c,
			fmt.Sprintf("V = %d × %d × %d = %d", a, b, c, a*b*c)), nil
	case 2:
		if template(r, w, "prism", "cylinder") == "prism" {
			v := float64(a*b*c) / 2
			return exactDecimalQuestion(r, Volume, level,
				fmt.Sprintf("A triangular prism has a triangular face with base %d cm and height %d cm, and length %d cm. Find its volume in cm³.", a, b, c), v,
				fmt.Sprintf("V = ½ × %d × %d × %d = %s", a, b, c, mathfmt.CleanDecimal(v))), nil
		}
		v := math.Pi * float64(a*a*c)
		return decimalQuestion(r, Volume, level,
			fmt.Sprintf("Find the volume of a cylinder with radius %d cm and height %d cm, to 1 decimal place.", a, c), v, 1,
			fmt.Sprintf("V = π × %d² × %d = %s", a, c, mathfmt.Fixed(v, 3))), nil
	}
	if template(r, w, "cone", "sphere") == "cone" {
		v := math.Pi * float64(a*a*c) / 3
		return decimalQuestion(r, Volume, level,
			fmt.Sprintf("Find the volume of a cone with radius %d cm and height %d cm, to 1 decimal place.", a, c), v, 1,
			fmt.Sprintf("V = ⅓ × π × %d² × %d = %s", a, c, mathfmt.Fixed(v, 3))), nil
	}
	v := 4 * math.Pi * float64(a*a*a) / 3
	return decimalQuestion(r, Volume, level,
		fmt.Sprintf("Find the volume of a sphere with radius %d cm, to 1 decimal place.", a), v, 1,
		fmt.Sprintf("V = ⁴⁄₃ × π × %d³ = %s", a, mathfmt.Fixed(v, 3))), nil
}
