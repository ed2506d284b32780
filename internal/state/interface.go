package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveView(state ViewState)
	GetView() (*ViewState, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
