package simulation

import "math"

// TransmissionProbability is the chance that at least one of exposures
// independent contacts transmits, each succeeding with rate.
func TransmissionProbability(rate float64, exposures int) float64 {
	if exposures <= 0 {
		return 0
	}
	return 1 - math.Pow(1-rate, float64(exposures))
}

// InfectionRisk is the closed-form probability that a susceptible agent with
// the given contact count is infected in one step: each contact is infected
// with probability prevalence and transmits with probability rate.
func InfectionRisk(prevalence, rate float64, contacts int) float64 {
	return TransmissionProbability(prevalence*rate, contacts)
}

// ExpectedPoissonRisk is InfectionRisk averaged over Poisson(mean) contact
// counts.
func ExpectedPoissonRisk(prevalence, rate, mean float64) float64 {
	return 1 - math.Exp(-mean*prevalence*rate)
}
