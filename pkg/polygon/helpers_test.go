package polygon

import "fmt"

// scriptedSource replays a fixed sequence of integers.
type scriptedSource struct {
	values []int
	next   int
}

func script(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) IntN(n int) (int, error) {
	if s.next >= len(s.values) {
		return 0, fmt.Errorf("script exhausted after %d values", len(s.values))
	}
	v := s.values[s.next]
	s.next++
	return v, nil
}

func (s *scriptedSource) consumed() bool { return s.next == len(s.values) }

func mustNew(t interface{ Fatalf(string, ...any) }, opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}
