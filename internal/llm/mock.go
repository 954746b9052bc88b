package llm

import "context"

// Mock is a canned completer for tests and offline runs. It records how many
// times it was invoked so callers can assert on provider traffic.
type Mock struct {
	Reply string
	Err   error
	Calls int
}

func NewMock(reply string) *Mock {
	return &Mock{Reply: reply}
}

func (m *Mock) Complete(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
