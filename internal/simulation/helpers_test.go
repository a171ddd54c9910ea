package simulation

import (
	"github.com/alexisbeaulieu97/infectsim/internal/model"
)

// scriptedUniform replays a fixed list of draws and counts how many were used.
type scriptedUniform struct {
	values []float64
	used   int
}

func (s *scriptedUniform) Float64() float64 {
	if s.used >= len(s.values) {
		panic("scripted uniform exhausted")
	}
	v := s.values[s.used]
	s.used++
	return v
}

// constUniform always returns the same draw.
type constUniform float64

func (c constUniform) Float64() float64 { return float64(c) }

func fivePersonParameters() model.Parameters {
	return model.Parameters{
		PopulationSize:              5,
		ContactNumberParameter:      4,
		RatePerInfectedContact:      0,
		InfectiousPeriod:            3,
		InitialPrevalenceInContacts: 0.01,
		SimulationTime:              8,
	}
}

func fivePersonPopulation(p model.Parameters) *Population {
	pop, err := NewPopulation(p, NewFixedContacts(4, 5, 3, 5, 2))
	if err != nil {
		panic(err)
	}
	return pop
}
