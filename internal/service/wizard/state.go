package wizard

// State collects the answers as environment assignments.
type State struct {
	EnvVars map[string]string
}

func NewState() *State {
	return &State{
		EnvVars: make(map[string]string),
	}
}
