package statespace

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
)

// Model enumerates every subset of a set of mutations, applies each subset to an initial
// state in a seeded random order, and checks every invariant against the subject's
// result. A failure names the mutations that produced the state and the state itself,
// and the seed makes the order reproducible.
type Model[State any, Result any] struct {
	seed        uint64
	initial     func() State
	subject     func(State) Result
	transitions []mutation[State]
	invariants  []invariant[State, Result]
}

type invariant[T any, TT any] struct {
	Name   string
	Assert func(T, TT) bool
}

type mutation[T any] struct {
	Name string
	Func func(T) T
}

// maxMutations bounds the enumerated space to 2^16 states.
const maxMutations = 16

// Test creates a new model for testing the given subject.
func Test[T any, TT any](fn func(T) TT) *Model[T, TT] {
	return &Model[T, TT]{subject: fn, seed: 1}
}

func (m *Model[T, TT]) WithSeed(seed uint64) *Model[T, TT] {
	m.seed = seed
	return m
}

func (m *Model[T, TT]) WithInitialState(fn func() T) *Model[T, TT] {
	m.initial = fn
	return m
}

// WithMutation appends a function that will be applied to the state while evaluating the model.
func (m *Model[T, TT]) WithMutation(name string, fn func(T) T) *Model[T, TT] {
	m.transitions = append(m.transitions, mutation[T]{Name: name, Func: fn})
	return m
}

// WithInvariant appends a function that must hold for the subject's result on every state.
func (m *Model[T, TT]) WithInvariant(name string, fn func(state T, result TT) bool) *Model[T, TT] {
	m.invariants = append(m.invariants, invariant[T, TT]{Name: name, Assert: fn})
	return m
}

// Evaluate executes the test.
func (m *Model[T, TT]) Evaluate(t *testing.T) {
	if len(m.transitions) > maxMutations {
		t.Fatalf("%d mutations exceed the limit of %d", len(m.transitions), maxMutations)
	}
	m.evaluate(t.Errorf)
}

func (m *Model[T, TT]) evaluate(fail func(msg string, args ...any)) {
	rng := rand.New(rand.NewPCG(m.seed, m.seed))

	for subset := range 1 << len(m.transitions) {
		var state T
		if m.initial != nil {
			state = m.initial()
		}
		for _, i := range rng.Perm(len(m.transitions)) {
			if subset&(1<<i) != 0 {
				state = m.transitions[i].Func(state)
			}
		}

		result := m.subject(state)
		for _, inv := range m.invariants {
			if inv.Assert(state, result) {
				continue
			}
			fail("invariant '%s' failed with mutation stack: [%s] state: %s", inv.Name, m.names(subset), describe(state))
		}
	}
}

func (m *Model[T, TT]) names(subset int) string {
	var names []string
	for i, tr := range m.transitions {
		if subset&(1<<i) != 0 {
			names = append(names, tr.Name)
		}
	}
	return strings.Join(names, ", ")
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%+v", v)
}
