package simulation

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform produces independent draws in [0, 1).
type Uniform interface {
	Float64() float64
}

// ContactSampler draws the contact count of a new agent.
type ContactSampler interface {
	Sample(mean float64) int
}

// pcgStream is the second PCG word; any odd constant gives an independent stream.
const pcgStream = 0x9e3779b97f4a7c15

// Source is a seeded generator serving both uniform and Poisson draws from a
// single stream.
type Source struct {
	seed uint64
	pcg  *rand.PCG
	rng  *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	pcg := rand.NewPCG(seed, pcgStream)
	return &Source{seed: seed, pcg: pcg, rng: rand.New(pcg)}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Sample returns a Poisson(mean) draw.
func (s *Source) Sample(mean float64) int {
	d := distuv.Poisson{Lambda: mean, Src: s.pcg}
	return int(d.Rand())
}

// FixedContacts replays a fixed list of contact counts, ignoring the mean.
// It lets callers reproduce a known population. Sample panics once the list
// is exhausted.
type FixedContacts struct {
	values []int
	next   int
}

// NewFixedContacts returns a sampler yielding values in order.
func NewFixedContacts(values ...int) *FixedContacts {
	return &FixedContacts{values: append([]int(nil), values...)}
}

// Sample returns the next configured contact count.
func (f *FixedContacts) Sample(float64) int {
	if f.next >= len(f.values) {
		panic("simulation: fixed contact list exhausted")
	}
	v := f.values[f.next]
	f.next++
	return v
}
