package simulation

import "fmt"

// State is the lifecycle position of an agent.
type State string

const (
	// StateSusceptible marks an agent that has never been infected.
	StateSusceptible State = "susceptible"
	// StateInfected marks a currently infected agent.
	StateInfected State = "infected"
	// StateRecovered marks an agent that cleared its infection. Recovered
	// agents are never infected again.
	StateRecovered State = "recovered"
)

// Agent is one simulated individual.
//
// Fields are unexported so the lifecycle invariants hold: everInfected never
// reverts, contacts never changes after construction, and newInfection is
// only raised by infect.
type Agent struct {
	infected         bool
	timeOfInfection  Optional[int]
	everInfected     bool
	newInfection     bool
	contacts         int
	infectedContacts Optional[int]
}

// NewAgent returns a susceptible agent with the given contact count.
func NewAgent(contacts int) Agent {
	return Agent{contacts: contacts, infectedContacts: Some(0)}
}

// Infected reports whether the agent is currently infected.
func (a Agent) Infected() bool { return a.infected }

// TimeOfInfection returns the step the current infection began.
func (a Agent) TimeOfInfection() Optional[int] { return a.timeOfInfection }

// EverInfected reports whether the agent has been infected at any point.
func (a Agent) EverInfected() bool { return a.everInfected }

// NewInfection reports whether the agent was infected during the last step.
func (a Agent) NewInfection() bool { return a.newInfection }

// Contacts returns the agent's fixed contact count.
func (a Agent) Contacts() int { return a.contacts }

// InfectedContacts returns the exposure count drawn in the last step. It is
// unset while the agent is infected and after recovery.
func (a Agent) InfectedContacts() Optional[int] { return a.infectedContacts }

// State derives the lifecycle state from the infection flags.
func (a Agent) State() State {
	switch {
	case a.infected:
		return StateInfected
	case a.everInfected:
		return StateRecovered
	default:
		return StateSusceptible
	}
}

// Susceptible reports whether the agent is eligible for infection trials.
func (a Agent) Susceptible() bool {
	return !a.infected && !a.everInfected
}

func (a Agent) String() string {
	return fmt.Sprintf("infected=%t time_of_infection=%s ever_infected=%t contacts=%d infected_contacts=%s",
		a.infected, formatOptionalInt(a.timeOfInfection), a.everInfected, a.contacts, formatOptionalInt(a.infectedContacts))
}

func (a *Agent) infect(step int) {
	a.infected = true
	a.timeOfInfection = Some(step)
	a.everInfected = true
	a.newInfection = true
}

func (a *Agent) recover() {
	a.infected = false
	a.timeOfInfection = None[int]()
}

// infectionAge returns how many steps ago the current infection began.
func (a Agent) infectionAge(step int) (int, bool) {
	start, ok := a.timeOfInfection.Get()
	if !ok {
		return 0, false
	}
	return step - start, true
}
