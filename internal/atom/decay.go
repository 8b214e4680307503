package atom

import "fmt"

// DecayChannel is a spontaneous decay path from Upper to Lower. Rate is
// the partial decay rate in rad/s, Branching the fraction of the total
// excited-state decay carried by this channel.
type DecayChannel struct {
	Upper     Level
	Lower     Level
	Rate      float64
	Branching float64
}

func NewDecayChannel(upper, lower Level, rate, branching float64) (DecayChannel, error) {
	c := DecayChannel{Upper: upper, Lower: lower, Rate: rate, Branching: branching}
	if err := c.validate(); err != nil {
		return DecayChannel{}, err
	}
	return c, nil
}

func (c DecayChannel) validate() error {
	if c.Upper.Energy <= c.Lower.Energy {
		return fmt.Errorf("%w: upper %.3e J <= lower %.3e J",
			ErrLevelOrdering, c.Upper.Energy, c.Lower.Energy)
	}
	if c.Rate < 0 {
		return fmt.Errorf("%w: decay rate %g", ErrNegativeRate, c.Rate)
	}
	if c.Branching < 0 || c.Branching > 1 {
		return fmt.Errorf("%w: got %g", ErrBranching, c.Branching)
	}
	return checkSelectionRules(c.Lower, c.Upper)
}

func (c DecayChannel) String() string {
	return fmt.Sprintf("%s -> %s (rate=%.3e, br=%.3f)", c.Upper, c.Lower, c.Rate, c.Branching)
}
