package runner

// fixedRandom returns the same value forever.
// fixedRandom(1) never spawns, fixedRandom(0) spawns whenever the gate is open.
type fixedRandom float64

func (r fixedRandom) Float64() float64 {
	return float64(r)
}

// quietSession returns a session whose field never spawns on its own.
func quietSession() *Session {
	return NewSession(DefaultParams(), fixedRandom(1))
}
