package fsm // import "github.com/zenyway/fsm"

import (
	"sort"
)

// registry is the memo table of a single compilation.  It assigns each reachable
// state a stable slot id, in the order the states are first reached.
type registry struct {
	ids    map[string]int
	states []string
}

func newRegistry() *registry {
	return &registry{
		ids: map[string]int{},
	}
}

func (r *registry) register(state string) int {
	id := len(r.states)
	r.ids[state] = id
	r.states = append(r.states, state)
	return id
}

// compile builds the node graph reachable from initial and returns its node.
func compile(spec AutomataSpec, initial string, log Logger) (*machine, error) {
	if len(spec) == 0 {
		return nil, ErrEmptySpec
	}

	if _, has := spec[initial]; !has {
		err := ErrUnknownState{State: initial}
		log.Error("compile failed", "err", err)
		return nil, err
	}

	reg := newRegistry()
	if err := reach(spec, initial, reg, log); err != nil {
		log.Error("compile failed", "err", err)
		return nil, err
	}

	slots := link(spec, reg, log)

	log.Debug("compiled", "initial", initial, "states", len(slots), "defined", len(spec))
	return &slots[reg.ids[initial]], nil
}

// reach registers state and, depth-first, every state reachable from it.  A
// state is registered before its edges are followed, so a cycle back to it
// stops here.
func reach(spec AutomataSpec, state string, reg *registry, log Logger) error {
	if _, has := reg.ids[state]; has {
		return nil
	}

	id := reg.register(state)
	log.Debug("registered state", "state", state, "id", id)

	commands := spec[state]
	for _, command := range commands.names() {
		target := commands[command].Target
		if _, has := spec[target]; !has {
			return ErrUnknownState{State: target, From: state, Command: command}
		}
		if err := reach(spec, target, reg, log); err != nil {
			return err
		}
	}
	return nil
}

// link allocates one slot per registered state, then resolves every edge to the
// slot of its target.  Slots are never moved after allocation, so their
// addresses serve as node identity.
func link(spec AutomataSpec, reg *registry, log Logger) []machine {
	slots := make([]machine, len(reg.states))
	for id, state := range reg.states {
		slots[id].state = state
	}

	for id, state := range reg.states {
		commands := spec[state]
		names := commands.names()
		edges := make(map[string]edge, len(names))

		for _, command := range names {
			transition := commands[command]
			edges[command] = edge{
				next:    &slots[reg.ids[transition.Target]],
				payload: transition.Payload,
			}
			log.Debug("resolved edge", "from", state, "command", command, "to", transition.Target)
		}

		slots[id].edges = edges
		slots[id].commands = names
	}
	return slots
}

// names returns the command names in sorted order
func (c Commands) names() []string {
	names := make([]string, 0, len(c))
	for command := range c {
		names = append(names, command)
	}
	sort.Strings(names)
	return names
}
