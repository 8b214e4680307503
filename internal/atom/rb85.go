package atom

// NewRb85System builds the Rb85 (I=5/2) D-line level structure: ground
// 5S_1/2 F=2,3; excited 5P_1/2 F=2,3 and 5P_3/2 F=1..4.
func NewRb85System() *System {
	return buildSystem(isotopeData{
		name:        "Rb85",
		nuclearSpin: Rb85NuclearSpin,
		groundA:     Rb85GroundA,
		p12A:        Rb85P12A,
		p32A:        Rb85P32A,
		p32B:        Rb85P32B,
		groundF:     []float64{2, 3},
		p12F:        []float64{2, 3},
		p32F:        []float64{1, 2, 3, 4},
	})
}
