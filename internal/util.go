package internal

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Reflex chain of the monotone triangulation.
type VertexStack []*Vertex

func (s *VertexStack) Push(v *Vertex) {
	*s = append(*s, v)
}

func (s *VertexStack) Pop() *Vertex {
	if len(*s) == 0 {
		return nil
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *VertexStack) Peek() *Vertex {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}

func (s *VertexStack) Len() int {
	return len(*s)
}
