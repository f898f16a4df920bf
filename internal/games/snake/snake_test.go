package snake

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{North, 0, -1},
		{East, 1, 0},
		{South, 0, 1},
		{West, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s := NewSnake(GridCoord{X: 5, Y: 5})
			s.SetDirection(tc.dir)

			next := s.NextHead()
			if next != (GridCoord{X: 5 + tc.dx, Y: 5 + tc.dy}) {
				t.Errorf("NextHead() = %v, expected (%d, %d)", next, 5+tc.dx, 5+tc.dy)
			}
			// Pure: nothing moved
			if s.Head() != (GridCoord{X: 5, Y: 5}) {
				t.Errorf("NextHead() mutated head to %v", s.Head())
			}
			if tc.dir.Opposite().Opposite() != tc.dir {
				t.Errorf("Opposite() is not an involution for %v", tc.dir)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
	}{
		{"north", North},
		{"UP", North},
		{" e ", East},
		{"down", South},
		{"west", West},
		{"left", West},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil || got != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, %v; expected %v", tc.in, got, err, tc.expected)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) should fail")
	}
}

func TestParseDirectionMatchesConfig(t *testing.T) {
	for _, name := range []string{"north", "UP", "e", "right", "s", "down", "w", "left", "sideways", "ne"} {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultSnakeConfig()
			cfg.Board.InitialDirection = name
			validErr := cfg.Validate()
			_, parseErr := ParseDirection(name)
			if (validErr == nil) != (parseErr == nil) {
				t.Errorf("Validate() = %v but ParseDirection() = %v", validErr, parseErr)
			}
		})
	}

	cfg := config.DefaultSnakeConfig()
	cfg.Board.InitialDirection = "up"
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if got := g.Snapshot().Dir; got != North {
		t.Errorf("initial heading = %v, expected %v", got, North)
	}
}

func TestDirectionJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Dir Direction `json:"dir"`
	}{South})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"dir":"south"}` {
		t.Errorf("Marshal = %s, expected {\"dir\":\"south\"}", data)
	}

	var back struct {
		Dir Direction `json:"dir"`
	}
	if err := json.Unmarshal([]byte(`{"dir":"west"}`), &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Dir != West {
		t.Errorf("Unmarshal = %v, expected west", back.Dir)
	}
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(GridCoord{X: 3, Y: 4})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", s.Len())
	}
	if s.Head() != (GridCoord{X: 3, Y: 4}) {
		t.Errorf("Head() = %v, expected (3, 4)", s.Head())
	}
	if s.Direction() != DefaultDirection {
		t.Errorf("Direction() = %v, expected %v", s.Direction(), DefaultDirection)
	}
}

func TestMoveConservation(t *testing.T) {
	s := NewSnake(GridCoord{X: 5, Y: 5})

	// Grow twice heading east
	s.Move(true)
	s.Move(true)
	if s.Len() != 3 {
		t.Fatalf("after two growing moves Len() = %d, expected 3", s.Len())
	}
	expected := []GridCoord{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}}
	assertBody(t, s.Body(), expected)

	// Plain moves keep the length and shift every segment forward
	s.SetDirection(South)
	s.Move(false)
	assertBody(t, s.Body(), []GridCoord{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 7, Y: 6}})

	s.Move(false)
	assertBody(t, s.Body(), []GridCoord{{X: 7, Y: 5}, {X: 7, Y: 6}, {X: 7, Y: 7}})
	if s.Head() != (GridCoord{X: 7, Y: 7}) {
		t.Errorf("Head() = %v, expected (7, 7)", s.Head())
	}
}

func TestMoveSingleCell(t *testing.T) {
	s := NewSnake(GridCoord{X: 2, Y: 2})
	s.SetDirection(North)
	s.Move(false)

	assertBody(t, s.Body(), []GridCoord{{X: 2, Y: 1}})
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake(GridCoord{X: 2, Y: 2})
	body := s.Body()
	body[0] = GridCoord{X: 9, Y: 9}

	if s.Head() != (GridCoord{X: 2, Y: 2}) {
		t.Error("mutating Body() result changed the snake")
	}
}

func TestHas(t *testing.T) {
	s := NewSnake(GridCoord{X: 1, Y: 1})
	s.Move(true)
	s.Move(true)

	for _, c := range []GridCoord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}} {
		if !s.Has(c) {
			t.Errorf("Has(%v) = false, expected true", c)
		}
	}
	if s.Has(GridCoord{X: 4, Y: 1}) {
		t.Error("Has((4, 1)) = true, expected false")
	}
}

func assertBody(t *testing.T, got, expected []GridCoord) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("body = %v, expected %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("body = %v, expected %v", got, expected)
		}
	}
}
