package tsp

// Problem is one loaded instance: a label, its cities and their distances.
// It is immutable after NewProblem and may be shared by any number of runs.
type Problem struct {
	label  string
	cities []City
	dist   *DistanceMatrix
}

// NewProblem validates cities and computes the distance matrix eagerly so
// that data errors surface before any search starts. The cities slice is copied.
func NewProblem(label string, cities []City) (*Problem, error) {
	dm, err := NewDistanceMatrix(cities)
	if err != nil {
		return nil, err
	}
	cp := make([]City, len(cities))
	copy(cp, cities)

	return &Problem{label: label, cities: cp, dist: dm}, nil
}

// CitiesFromXY numbers coordinate pairs in input order.
func CitiesFromXY(xy [][2]float64) []City {
	out := make([]City, len(xy))
	var i int
	for i = range xy {
		out[i] = City{Index: i, X: xy[i][0], Y: xy[i][1]}
	}

	return out
}

// Label returns the identifying string of the instance.
func (p *Problem) Label() string { return p.label }

// Len returns the number of cities.
func (p *Problem) Len() int { return len(p.cities) }

// Cities returns a copy of the city list, e.g. for a renderer.
func (p *Problem) Cities() []City {
	out := make([]City, len(p.cities))
	copy(out, p.cities)

	return out
}

// Distances returns the shared, read-only distance matrix.
func (p *Problem) Distances() *DistanceMatrix { return p.dist }
