package atom

// NewRb87System builds the Rb87 (I=3/2) D-line level structure: ground
// 5S_1/2 F=1,2; excited 5P_1/2 F=1,2 and 5P_3/2 F=0..3.
func NewRb87System() *System {
	return buildSystem(isotopeData{
		name:        "Rb87",
		nuclearSpin: Rb87NuclearSpin,
		groundA:     Rb87GroundA,
		p12A:        Rb87P12A,
		p32A:        Rb87P32A,
		p32B:        Rb87P32B,
		groundF:     []float64{1, 2},
		p12F:        []float64{1, 2},
		p32F:        []float64{0, 1, 2, 3},
	})
}
