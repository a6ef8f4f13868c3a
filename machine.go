package fsm // import "github.com/zenyway/fsm"

// edge is a resolved transition
type edge struct {
	next    *machine
	payload interface{}
}

// implements StateMachine interface
type machine struct {
	state    string
	edges    map[string]edge
	commands []string
}

// State returns the name of the state
func (m *machine) State() string {
	return m.state
}

// Dispatch follows the edge for the command, or stays put if there is none
func (m *machine) Dispatch(command string) (StateMachine, interface{}) {
	e, has := m.edges[command]
	if !has {
		return m, nil
	}
	return e.next, e.payload
}

// CanReceive returns true if the state declares the command
func (m *machine) CanReceive(command string) bool {
	_, has := m.edges[command]
	return has
}

func (m *machine) Commands() []string {
	return append([]string(nil), m.commands...)
}

func (m *machine) String() string {
	return m.state
}

func (m *machine) GoString() string {
	return m.state
}
