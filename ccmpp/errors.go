package ccmpp

import "errors"

var (
	// ErrEmptyBasePopulation reports a projection without age groups.
	ErrEmptyBasePopulation = errors.New("ccmpp: base population is empty")

	// ErrNoProjectionSteps reports a projection without steps.
	ErrNoProjectionSteps = errors.New("ccmpp: no projection steps")

	// ErrNoFertileAgeGroups reports a fertility schedule that covers no age
	// group.
	ErrNoFertileAgeGroups = errors.New("ccmpp: no fertile age groups")

	// ErrFertileIndex reports a fertile band that starts at the youngest age
	// group. The youngest group is rebuilt from births every step and cannot
	// bear children itself.
	ErrFertileIndex = errors.New(
		"ccmpp: fertile band must start after the youngest age group")

	// ErrFertileBand reports a fertile band that reaches past the oldest age
	// group.
	ErrFertileBand = errors.New("ccmpp: fertile band exceeds the age range")

	// ErrSurvivalShape reports a survival schedule whose length does not
	// match the number of age groups.
	ErrSurvivalShape = errors.New("ccmpp: survival schedule shape mismatch")

	// ErrShapeMismatch reports parameter grids that do not agree on the
	// number of age groups or steps.
	ErrShapeMismatch = errors.New("ccmpp: parameter shape mismatch")
)
