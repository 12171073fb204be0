// Package ccmpp implements the cohort component method of population
// projection.
//
// The method advances an age-structured population through a sequence of
// equally long steps. Within each step, net migrants are split evenly around
// the vital events, cohorts age into the next group or accumulate in the open
// age group, and births survive into the first age group according to the sex
// ratio at birth.
//
// Two formulations are provided:
//
//   - Project runs the projection step by step and records the demographic
//     flows of every step: deaths, births, infants, and migrations.
//   - ProjectLeslie folds each step into a Leslie matrix and advances the
//     population by sparse matrix multiplication. It produces the population
//     grid only.
//
// The two formulations compute the same populations whenever the fertile band
// stays below the open age group.
//
// Example usage:
//
//	proj, err := ccmpp.Project(ccmpp.Params[scalar.Float64]{
//	    BasePop: basePop,
//	    Sx:      survival,
//	    Fx:      fertility,
//	    Gx:      migration,
//	    Srb:     sexRatio,
//	    AgeSpan: scalar.Float64(5),
//	    FxIdx:   3,
//	})
//	if err != nil {
//	    return err
//	}
//	final := proj.Population.Col(proj.NSteps())
package ccmpp
