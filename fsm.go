package fsm // import "github.com/zenyway/fsm"

// Compile checks the spec and returns the compiled node for the initial state.
// Every state reachable from it is compiled up front and linked, so the rest of
// the graph is reached by dispatching commands.
func Compile(spec AutomataSpec, initial string) (StateMachine, error) {
	return DefaultOptions().Compile(spec, initial)
}

// MustCompile is like Compile but panics if the spec does not compile.
func MustCompile(spec AutomataSpec, initial string) StateMachine {
	m, err := Compile(spec, initial)
	if err != nil {
		panic(err)
	}
	return m
}

// Compile compiles the spec with these options.
func (o Options) Compile(spec AutomataSpec, initial string) (StateMachine, error) {
	log := o.Logger
	if log == nil {
		log = &nilLogger{}
	}

	m, err := compile(spec, initial, log)
	if err != nil {
		return nil, err
	}
	return m, nil
}
