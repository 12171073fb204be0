package ccmpp

import "github.com/sarchlab/cohort/scalar"

// Project validates the parameters, runs every projection step in order, and
// returns the completed projection.
func Project[T scalar.Number[T]](params Params[T]) (*Projection[T], error) {
	p, err := NewProjection(params)
	if err != nil {
		return nil, err
	}

	p.Run()

	return p, nil
}
