package fsm // import "github.com/zenyway/fsm"

// AutomataSpec is the declarative transition table: for each state name, the
// commands it accepts and where each of them leads.
type AutomataSpec map[string]Commands

// Commands maps a command name to the transition taken when that command is
// dispatched.
type Commands map[string]Transition

// Transition is an edge to a target state.  Payload is opaque and is handed
// back verbatim on dispatch.  A nil Payload means the edge carries none.
type Transition struct {

	// Target is the name of the state to transition to.
	Target string

	// Payload is the optional data attached to this edge.
	Payload interface{}
}

// To returns a bare transition to the named state, with no payload.
func To(target string) Transition {
	return Transition{Target: target}
}

// With returns a transition to the named state that carries the given payload.
func With(target string, payload interface{}) Transition {
	return Transition{Target: target, Payload: payload}
}

// StateMachine is a compiled, immutable node of the state graph.  There is
// exactly one node per state name for a given compilation, so nodes can be
// compared with ==.
//
// A node holds no mutable state.  Callers track the current node themselves
// by keeping the node returned from Dispatch.
type StateMachine interface {

	// State returns the name of the state this node represents.
	State() string

	// Dispatch returns the node reached by the command and the payload of
	// the edge taken.  An undefined command returns the node itself and a
	// nil payload.
	Dispatch(command string) (StateMachine, interface{})

	// CanReceive returns true if the state declares the given command.
	CanReceive(command string) bool

	// Commands returns the sorted names of the commands declared by the state.
	Commands() []string
}

// Logger is the interface used by the module to log information
type Logger interface {
	Debug(string, ...interface{})
	Error(string, ...interface{})
	Info(string, ...interface{})
}

// DefaultOptions returns default values
func DefaultOptions() Options {
	return Options{
		Logger: &nilLogger{},
	}
}

// Options contains options for compilation
type Options struct {

	// Logger is a logger that implements the logging interface
	Logger Logger
}
