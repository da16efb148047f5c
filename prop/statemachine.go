package prop

import (
	"testing"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/gen"
)

// Command is one action a StateMachine accepts: Generator produces a
// concrete command value, Precondition (optional, nil means "always
// eligible") decides whether it can run against the current state, and
// Execute applies it.
type Command[S, C any] struct {
	Name         string
	Generator    gen.Generator[C]
	Precondition func(state S, cmd C) bool
	Execute      func(state S, cmd C) (S, error)

	// Postcondition, if set, is checked against every transition this
	// command produces: TestStateMachine fails the example when it
	// returns false for an executed (non-skipped) command.
	Postcondition func(from S, cmd C, to S) bool
}

// StateMachine describes a system under test as a starting state plus the
// commands that can mutate it: generate a sequence of commands, replay it
// against the model, and let the caller's check inspect what happened.
type StateMachine[S, C any] struct {
	InitialState S
	Commands     []Command[S, C]
}

// CommandSequence is a generated or hand-built list of command values to
// replay against a StateMachine.
type CommandSequence[C any] struct {
	Commands []C
}

// StateTransition records one executed command: which command, what state
// it started from, what state it produced, and whether Execute returned
// an error.
type StateTransition[S, C any] struct {
	Command   C
	FromState S
	ToState   S
	Error     error
}

// StateMachineResult is the outcome of replaying a CommandSequence against
// a StateMachine: the resulting state, the full execution trace, and any
// commands that had no eligible definition to run them.
type StateMachineResult[S, C any] struct {
	FinalState       S
	ExecutionHistory []StateTransition[S, C]
	SkippedCommands  []C
}

var (
	commandSequenceSite = atom.Symbol("prop.CommandSequence")
	commandPickSite     = atom.Symbol("prop.CommandSequence.pick")
)

// CommandSequenceGenerator builds a Generator that produces a
// CommandSequence by repeatedly picking one of sm.Commands' generators at
// random, up to maxLength commands (0 falls back to the ambient Size, the
// same convention gen.Container uses for an unbounded length). It mirrors
// Container's length-then-elements shape, generalized to pick among
// several element generators instead of just one.
func CommandSequenceGenerator[S, C any](sm StateMachine[S, C], maxLength int) gen.Generator[CommandSequence[C]] {
	return func() CommandSequence[C] {
		if len(sm.Commands) == 0 {
			return CommandSequence[C]{}
		}
		size := gen.Size{Max: maxLength}
		element := func() C {
			idx := gen.Range(commandPickSite, 0, len(sm.Commands)-1)
			return sm.Commands[idx].Generator()
		}
		commands := gen.Container(commandSequenceSite, element, size)()
		return CommandSequence[C]{Commands: commands}
	}
}

// selectCommand returns the first command definition in sm.Commands whose
// Precondition holds (or that has no Precondition at all) for the given
// state and command value.
func selectCommand[S, C any](sm StateMachine[S, C], state S, cmd C) (Command[S, C], bool) {
	for _, c := range sm.Commands {
		if c.Precondition == nil || c.Precondition(state, cmd) {
			return c, true
		}
	}
	var zero Command[S, C]
	return zero, false
}

// executeStateMachine replays sequence against sm, recording a
// StateTransition for every command that finds an eligible definition and
// collecting the rest in SkippedCommands. A command's own Execute error
// does not stop the replay — it is recorded on that step's transition and
// execution continues from whatever state Execute returned.
func executeStateMachine[S, C any](sm StateMachine[S, C], sequence CommandSequence[C]) StateMachineResult[S, C] {
	state := sm.InitialState
	result := StateMachineResult[S, C]{FinalState: state}
	for _, cmd := range sequence.Commands {
		def, ok := selectCommand(sm, state, cmd)
		if !ok {
			result.SkippedCommands = append(result.SkippedCommands, cmd)
			continue
		}
		from := state
		next, err := def.Execute(state, cmd)
		result.ExecutionHistory = append(result.ExecutionHistory, StateTransition[S, C]{
			Command: cmd, FromState: from, ToState: next, Error: err,
		})
		state = next
	}
	result.FinalState = state
	return result
}

// defaultMaxSequenceLength bounds a generated CommandSequence when the
// caller doesn't need a tighter one, matching Container's own default
// length range.
const defaultMaxSequenceLength = 20

// TestStateMachine is ForAll specialized for model-based, command-sequence
// testing: it generates a CommandSequence from sm, replays it through
// executeStateMachine, and fails the example at the first transition whose
// command defines a Postcondition that returns false. Shrinking a failing
// sequence works the same way ForAll's does — Container's length and
// per-command picks are each their own shrink site, so a minimal failing
// sequence converges to the fewest commands that still reproduce the
// failure.
func TestStateMachine[S, C any](t *testing.T, sm StateMachine[S, C], cfg Config) {
	g := CommandSequenceGenerator(sm, defaultMaxSequenceLength)
	ForAll(t, cfg, g)(func(t *testing.T, seq CommandSequence[C]) {
		result := executeStateMachine(sm, seq)
		for _, transition := range result.ExecutionHistory {
			def, ok := selectCommand(sm, transition.FromState, transition.Command)
			if !ok || def.Postcondition == nil {
				continue
			}
			if !def.Postcondition(transition.FromState, transition.Command, transition.ToState) {
				t.Errorf("postcondition failed for command %q: %#v -> %#v", def.Name, transition.FromState, transition.ToState)
			}
		}
	})
}
