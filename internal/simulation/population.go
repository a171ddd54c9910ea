package simulation

import (
	"fmt"

	"github.com/alexisbeaulieu97/infectsim/internal/model"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// Population is the fixed, ordered set of agents of one run.
type Population struct {
	agents []Agent
}

// NewPopulation draws p.PopulationSize agents from sampler, in index order,
// and infects agent p.SeedIndex at step 0.
func NewPopulation(p model.Parameters, sampler ContactSampler) (*Population, error) {
	if p.PopulationSize <= 0 {
		return nil, simerrors.NewValidationError("parameters.population_size",
			fmt.Sprintf("must be positive, got %d", p.PopulationSize), nil)
	}
	if p.SeedIndex < 0 || p.SeedIndex >= p.PopulationSize {
		return nil, simerrors.NewValidationError("parameters.seed_index",
			fmt.Sprintf("must be within [0,%d), got %d", p.PopulationSize, p.SeedIndex), nil)
	}
	if sampler == nil {
		return nil, simerrors.NewValidationError("sampler", "contact sampler is nil", nil)
	}

	agents := make([]Agent, p.PopulationSize)
	for i := range agents {
		contacts := sampler.Sample(p.ContactNumberParameter)
		if contacts < 0 {
			return nil, simerrors.NewValidationError("sampler",
				fmt.Sprintf("agent %d drew negative contact count %d", i, contacts), nil)
		}
		agents[i] = NewAgent(contacts)
	}
	agents[p.SeedIndex].infect(0)

	return &Population{agents: agents}, nil
}

// Len returns the number of agents.
func (p *Population) Len() int {
	return len(p.agents)
}

// Agent returns a copy of agent i.
func (p *Population) Agent(i int) Agent {
	return p.agents[i]
}

// Agents returns a copy of all agents in index order.
func (p *Population) Agents() []Agent {
	return append([]Agent(nil), p.agents...)
}

// contactTotals returns the contacts of infected agents and of all agents.
func (p *Population) contactTotals() (infected, total int) {
	for _, a := range p.agents {
		total += a.contacts
		if a.infected {
			infected += a.contacts
		}
	}
	return infected, total
}
