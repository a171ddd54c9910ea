// Package simulation implements the individual-based infection model.
//
// A Population of Agents is built once, with each agent's contact count drawn
// from a Poisson distribution and a single agent seeded as infected at step 0.
// Update advances every agent by one step using a population-wide
// prevalence-in-contacts estimate, and Summarise reduces the population to a
// model.StepSummary. Simulator drives both over a fixed horizon.
//
// All randomness flows through the Uniform and ContactSampler interfaces so a
// run is reproducible from its seed as long as the draw order is preserved:
// contact counts in agent order at construction, then per step and per agent
// the exposure draws followed by the transmission draws.
package simulation
