package advanced

// The sweep frontier.
type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop removes the top point. Popping an empty stack is a bug in the caller.
func (s *PointStack) Pop() Point {
	if len(*s) == 0 {
		fatalf("pop from empty point stack")
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	if len(*s) == 0 {
		fatalf("peek at empty point stack")
	}
	return (*s)[len(*s)-1]
}

// The point just under the top.
func (s *PointStack) PeekSecond() Point {
	if len(*s) < 2 {
		fatalf("peek below top with %d points on the stack", len(*s))
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}
