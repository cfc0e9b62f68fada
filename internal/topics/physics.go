package topics

import (
	"fmt"
	"math"

	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

// gravity is the field strength quoted in question text, in N/kg.
const gravity = 9.8

// minuteSpans divide an hour so distances stay whole at 12 km/h steps.
var minuteSpans = []int{15, 20, 30, 40, 45, 90}

// speedQuestion asks for s = d/t with whole-number values.
func speedQuestion(r *rng.Rand, topic problemgen.TopicID, level int) *problemgen.Question {
	s, t := r.Int(2, 30), r.Int(2, 20)
	d := s * t
	return intQuestion(r, topic, level,
		fmt.Sprintf("An object travels %d m in %d s at a constant speed. Find its speed in m/s.", d, t), s,
		fmt.Sprintf("speed = distance ÷ time = %d ÷ %d = %d", d, t, s))
}

func speedDistanceTime(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		return speedQuestion(r, SpeedDistanceTime, level), nil
	case 2:
		speed := 12 * r.Int(2, 10)
		mins := rng.Pick(r, minuteSpans)
		d := speed * mins / 60
		if template(r, w, "distance", "time") == "distance" {
			return intQuestion(r, SpeedDistanceTime, level,
				fmt.Sprintf("A car travels at %d km/h for %d minutes. How far does it travel in km?", speed, mins), d,
				fmt.Sprintf("%d minutes = %s hours, so distance = %d × %s = %d", mins, mathfmt.CleanDecimal(float64(mins)/60), speed, mathfmt.CleanDecimal(float64(mins)/60), d)), nil
		}
		return intQuestion(r, SpeedDistanceTime, level,
			fmt.Sprintf("A car travels %d km at %d km/h. How long does the journey take in minutes?", d, speed), mins,
			fmt.Sprintf("time = %d ÷ %d = %s hours = %d minutes", d, speed, mathfmt.CleanDecimal(float64(d)/float64(speed)), mins)), nil
	}

	d1, d2 := r.Int(10, 120), r.Int(10, 120)
	t1, t2 := r.Int(1, 4), r.Int(1, 4)
	avg := float64(d1+d2) / float64(t1+t2)
	return decimalQuestion(r, SpeedDistanceTime, level,
		fmt.Sprintf("A cyclist rides %d km in %d hours, then %d km in %d hours. Find the average speed in km/h to 2 decimal places.", d1, t1, d2, t2),
		avg, 2,
		fmt.Sprintf("average speed = total distance ÷ total time = %d ÷ %d = %s", d1+d2, t1+t2, mathfmt.Fixed(avg, 4))), nil
}

func kinematics(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	u, a, t := r.Int(0, 10), r.Int(1, 5), r.Int(2, 10)
	v := u + a*t
	switch level {
	case 1:
		if template(r, w, "speed", "acceleration") == "speed" {
			return speedQuestion(r, Kinematics, level), nil
		}
		return intQuestion(r, Kinematics, level,
			fmt.Sprintf("A car speeds up from %d m/s to %d m/s in %d s. Find its acceleration in m/s².", u, v, t), a,
			fmt.Sprintf("a = (v - u) ÷ t = (%d - %d) ÷ %d = %d", v, u, t, a)), nil
	case 2:
		if template(r, w, "final-velocity", "displacement") == "final-velocity" {
			return intQuestion(r, Kinematics, level,
				fmt.Sprintf("An object starts at %d m/s and accelerates at %d m/s² for %d s. Find its final velocity in m/s.", u, a, t), v,
				fmt.Sprintf("v = u + at = %d + %d × %d = %d", u, a, t, v)), nil
		}
		s := float64(u*t) + 0.5*float64(a*t*t)
		return exactDecimalQuestion(r, Kinematics, level,
			fmt.Sprintf("An object starts at %d m/s and accelerates at %d m/s² for %d s. Find the distance travelled in m.", u, a, t), s,
			fmt.Sprintf("s = ut + ½at² = %d × %d + ½ × %d × %d² = %s", u, t, a, t, mathfmt.CleanDecimal(s))), nil
	}

	s := r.Int(5, 100)
	final := math.Sqrt(float64(u*u + 2*a*s))
	return decimalQuestion(r, Kinematics, level,
		fmt.Sprintf("An object moving at %d m/s accelerates at %d m/s² over %d m. Find its final velocity in m/s to 1 decimal place.", u, a, s),
		final, 1,
		fmt.Sprintf("v² = u² + 2as = %d + %d = %d, so v = %s", u*u, 2*a*s, u*u+2*a*s, mathfmt.Fixed(final, 3))), nil
}

// materials pairs a name with its density in g/cm³, held in tenths.
var materials = []struct {
	Name   string
	Tenths int
}{
	{"aluminium", 27},
	{"iron", 79},
	{"copper", 89},
	{"lead", 113},
	{"glass", 25},
	{"granite", 28},
}

func density(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		rho, vol := r.Int(1, 12), r.Int(2, 20)
		m := rho * vol
		return intQuestion(r, Density, level,
			fmt.Sprintf("A block has mass %d g and volume %d cm³. Find its density in g/cm³.", m, vol), rho,
			fmt.Sprintf("density = mass ÷ volume = %d ÷ %d = %d", m, vol, rho)), nil
	case 2:
		mat := rng.Pick(r, materials)
		rho := float64(mat.Tenths) / 10
		vol := r.Int(2, 50)
		mass := float64(mat.Tenths*vol) / 10
		if template(r, w, "mass", "volume") == "mass" {
			return exactDecimalQuestion(r, Density, level,
				fmt.Sprintf("The density of %s is %s g/cm³. Find the mass of %d cm³ of %s in g.", mat.Name, mathfmt.CleanDecimal(rho), vol, mat.Name), mass,
				fmt.Sprintf("mass = density × volume = %s × %d = %s", mathfmt.CleanDecimal(rho), vol, mathfmt.CleanDecimal(mass))), nil
		}
		return intQuestion(r, Density, level,
			fmt.Sprintf("A piece of %s has mass %s g. Its density is %s g/cm³. Find its volume in cm³.", mat.Name, mathfmt.CleanDecimal(mass), mathfmt.CleanDecimal(rho)), vol,
			fmt.Sprintf("volume = mass ÷ density = %s ÷ %s = %d", mathfmt.CleanDecimal(mass), mathfmt.CleanDecimal(rho), vol)), nil
	}

	mat := rng.Pick(r, materials)
	kg := mat.Tenths * 100
	if template(r, w, "to-si", "from-si") == "to-si" {
		return intQuestion(r, Density, level,
			fmt.Sprintf("The density of %s is %s g/cm³. Write this in kg/m³.", mat.Name, mathfmt.CleanDecimal(float64(mat.Tenths)/10)), kg,
			fmt.Sprintf("1 g/cm³ = 1000 kg/m³, so %s × 1000 = %d", mathfmt.CleanDecimal(float64(mat.Tenths)/10), kg)), nil
	}
	g := float64(mat.Tenths) / 10
	return exactDecimalQuestion(r, Density, level,
		fmt.Sprintf("The density of %s is %d kg/m³. Write this in g/cm³.", mat.Name, kg), g,
		fmt.Sprintf("%d ÷ 1000 = %s", kg, mathfmt.CleanDecimal(g))), nil
}

func forces(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	m, a := r.Int(2, 50), r.Int(1, 10)
	switch level {
	case 1:
		return intQuestion(r, Forces, level,
			fmt.Sprintf("Find the resultant force needed to accelerate a %d kg mass at %d m/s², in N.", m, a), m*a,
			fmt.Sprintf("F = ma = %d × %d = %d", m, a, m*a)), nil
	case 2:
		if template(r, w, "weight", "acceleration") == "weight" {
			wt := float64(m) * gravity
			return exactDecimalQuestion(r, Forces, level,
				fmt.Sprintf("Find the weight of a %d kg mass on Earth, in N. Take g = %s N/kg.", m, mathfmt.CleanDecimal(gravity)), wt,
				fmt.Sprintf("W = mg = %d × %s = %s", m, mathfmt.CleanDecimal(gravity), mathfmt.CleanDecimal(wt))), nil
		}
		f := m * a
		return intQuestion(r, Forces, level,
			fmt.Sprintf("A resultant force of %d N acts on a %d kg mass. Find its acceleration in m/s².", f, m), a,
			fmt.Sprintf("a = F ÷ m = %d ÷ %d = %d", f, m, a)), nil
	}

	if template(r, w, "resultant", "pressure") == "resultant" {
		drag := r.Int(10, 200)
		thrust := drag + m*a
		return intQuestion(r, Forces, level,
			fmt.Sprintf("A %d kg vehicle has a driving force of %d N and resistive forces of %d N. Find its acceleration in m/s².", m, thrust, drag), a,
			fmt.Sprintf("resultant = %d - %d = %d N, so a = %d ÷ %d = %d", thrust, drag, thrust-drag, thrust-drag, m, a)), nil
	}
	surface := rng.Pick(r, []int{2, 4, 5, 8, 10, 20, 25, 50})
	f := r.Int(10, 500)
	p := float64(f) / float64(surface)
	return exactDecimalQuestion(r, Forces, level,
		fmt.Sprintf("A force of %d N acts on an area of %d m². Find the pressure in Pa.", f, surface), p,
		fmt.Sprintf("p = F ÷ A = %d ÷ %d = %s", f, surface, mathfmt.CleanDecimal(p))), nil
}

func electricity(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	i, res := r.Int(1, 12), r.Int(2, 50)
	v := i * res
	switch level {
	case 1:
		return intQuestion(r, Electricity, level,
			fmt.Sprintf("A current of %d A flows through a %d Ω resistor. Find the potential difference in V.", i, res), v,
			fmt.Sprintf("V = IR = %d × %d = %d", i, res, v)), nil
	case 2:
		switch template(r, w, "current", "resistance", "power") {
		case "current":
			return intQuestion(r, Electricity, level,
				fmt.Sprintf("A potential difference of %d V is applied across a %d Ω resistor. Find the current in A.", v, res), i,
				fmt.Sprintf("I = V ÷ R = %d ÷ %d = %d", v, res, i)), nil
		case "resistance":
			return intQuestion(r, Electricity, level,
				fmt.Sprintf("A current of %d A flows when %d V is applied. Find the resistance in Ω.", i, v), res,
				fmt.Sprintf("R = V ÷ I = %d ÷ %d = %d", v, i, res)), nil
		default:
			pv := r.Int(3, 240)
			return intQuestion(r, Electricity, level,
				fmt.Sprintf("A device draws %d A from a %d V supply. Find its power in W.", i, pv), i*pv,
				fmt.Sprintf("P = IV = %d × %d = %d", i, pv, i*pv)), nil
		}
	}

	switch template(r, w, "charge", "energy", "series") {
	case "charge":
		t := r.Int(2, 120)
		return intQuestion(r, Electricity, level,
			fmt.Sprintf("A current of %d A flows for %d s. Find the charge that flows in C.", i, t), i*t,
			fmt.Sprintf("Q = It = %d × %d = %d", i, t, i*t)), nil
	case "energy":
		q := r.Int(2, 100)
		pv := r.Int(2, 24)
		return intQuestion(r, Electricity, level,
			fmt.Sprintf("A charge of %d C moves through a potential difference of %d V. Find the energy transferred in J.", q, pv), q*pv,
			fmt.Sprintf("E = QV = %d × %d = %d", q, pv, q*pv)), nil
	default:
		r1 := r.Int(1, res-1)
		r2 := res - r1
		return intQuestion(r, Electricity, level,
			fmt.Sprintf("Resistors of %d Ω and %d Ω are connected in series to a %d V supply. Find the current in A.", r1, r2, v), i,
			fmt.Sprintf("total R = %d + %d = %d Ω, so I = %d ÷ %d = %d", r1, r2, res, v, res, i)), nil
	}
}

func energy(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	m := r.Int(1, 20)
	switch level {
	case 1:
		v := r.Int(1, 20)
		ke := 0.5 * float64(m*v*v)
		return exactDecimalQuestion(r, Energy, level,
			fmt.Sprintf("Find the kinetic energy of a %d kg object moving at %d m/s, in J.", m, v), ke,
			fmt.Sprintf("KE = ½mv² = ½ × %d × %d² = %s", m, v, mathfmt.CleanDecimal(ke))), nil
	case 2:
		h := r.Int(1, 50)
		gpe := float64(m*h) * gravity
		return exactDecimalQuestion(r, Energy, level,
			fmt.Sprintf("A %d kg mass is lifted %d m. Find the gain in gravitational potential energy in J. Take g = %s N/kg.", m, h, mathfmt.CleanDecimal(gravity)), gpe,
			fmt.Sprintf("GPE = mgh = %d × %s × %d = %s", m, mathfmt.CleanDecimal(gravity), h, mathfmt.CleanDecimal(gpe))), nil
	}

	if template(r, w, "efficiency", "power") == "efficiency" {
		total := 20 * r.Int(1, 50)
		useful := total * r.Int(5, 95) / 100
		eff := 100 * float64(useful) / float64(total)
		return decimalQuestion(r, Energy, level,
			fmt.Sprintf("A motor is supplied with %d J and transfers %d J usefully. Find its efficiency as a percentage to 1 decimal place.", total, useful),
			eff, 1,
			fmt.Sprintf("efficiency = %d ÷ %d × 100 = %s%%", useful, total, mathfmt.Fixed(eff, 3))), nil
	}
	p, t := r.Int(5, 500), r.Int(2, 60)
	return intQuestion(r, Energy, level,
		fmt.Sprintf("A heater transfers %d J in %d s. Find its power in W.", p*t, t), p,
		fmt.Sprintf("P = E ÷ t = %d ÷ %d = %d", p*t, t, p)), nil
}
