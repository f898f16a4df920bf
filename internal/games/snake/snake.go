package snake

// Snake is an ordered body of cells plus a heading.
// The body runs tail to head: the last element is the head.
type Snake struct {
	body      []GridCoord
	direction Direction
}

// NewSnake creates a one-cell snake at head, heading DefaultDirection.
func NewSnake(head GridCoord) *Snake {
	return &Snake{
		body:      []GridCoord{head},
		direction: DefaultDirection,
	}
}

// Body returns a copy of the body cells, tail to head.
func (s *Snake) Body() []GridCoord {
	out := make([]GridCoord, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head cell.
func (s *Snake) Head() GridCoord {
	return s.body[len(s.body)-1]
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection overwrites the heading. Reversing into the neck is allowed;
// the board treats it as a self collision on the next update.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// NextHead returns where the head will be after the next move.
func (s *Snake) NextHead() GridCoord {
	return s.Head().Step(s.direction)
}

// Move advances the snake one cell. Every segment takes the position of the
// one ahead of it; with hasEatenFood the new head is appended instead, so the
// body grows by one. Move does no collision or food checks.
func (s *Snake) Move(hasEatenFood bool) {
	next := s.NextHead()

	if hasEatenFood {
		s.body = append(s.body, next)
		return
	}

	copy(s.body, s.body[1:])
	s.body[len(s.body)-1] = next
}

// Has reports whether c is occupied by the body.
func (s *Snake) Has(c GridCoord) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// clone returns a deep copy that shares nothing with s.
func (s *Snake) clone() *Snake {
	return &Snake{
		body:      s.Body(),
		direction: s.direction,
	}
}
