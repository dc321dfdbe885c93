package kernel

// Statistic selects the particle statistics of a Green's function.
//
// The numeric values matter: a Matsubara frequency with integer index n is
// ν_n = (2n + int(Statistic))·π, so Boson=0 yields even indices and
// Fermion=1 yields odd indices.
type Statistic int

const (
	// Boson statistics: Matsubara frequencies at even integers 2n.
	Boson Statistic = 0

	// Fermion statistics: Matsubara frequencies at odd integers 2n+1.
	Fermion Statistic = 1
)

// String returns the conventional name of the statistic.
func (s Statistic) String() string {
	if s == Fermion {
		return "Fermion"
	}

	return "Boson"
}
