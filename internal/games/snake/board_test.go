package snake

import (
	"math/rand"
	"testing"
)

func newTestBoard(gridSize int, head GridCoord, seed int64) *Board {
	return NewBoard(gridSize, head, East, rand.New(rand.NewSource(seed)))
}

func TestIsCollisionBoundary(t *testing.T) {
	b := newTestBoard(11, GridCoord{X: 5, Y: 5}, 1)

	tests := []struct {
		name     string
		c        GridCoord
		expected bool
	}{
		{"x = 0 is wall", GridCoord{X: 0, Y: 5}, true},
		{"y = 0 is wall", GridCoord{X: 5, Y: 0}, true},
		{"x = grid_size is wall", GridCoord{X: 11, Y: 5}, true},
		{"y = grid_size is wall", GridCoord{X: 5, Y: 11}, true},
		{"negative is wall", GridCoord{X: -1, Y: 5}, true},
		{"first interior cell", GridCoord{X: 1, Y: 1}, false},
		{"grid_size-1 is playable", GridCoord{X: 10, Y: 10}, false},
		{"snake body", GridCoord{X: 5, Y: 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 3; i++ { // same answer on repeated calls
				if got := b.IsCollision(tc.c); got != tc.expected {
					t.Fatalf("IsCollision(%v) = %v, expected %v", tc.c, got, tc.expected)
				}
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	b := newTestBoard(11, GridCoord{X: 5, Y: 5}, 7)

	if b.GridSize() != 11 {
		t.Errorf("GridSize() = %d, expected 11", b.GridSize())
	}
	assertBody(t, b.Snake().Body(), []GridCoord{{X: 5, Y: 5}})
	assertFoodValid(t, b)
}

func TestUpdateWallCollision(t *testing.T) {
	b := newTestBoard(11, GridCoord{X: 1, Y: 1}, 3)
	b.UpdateSnakeDirection(West)
	food := b.FoodLocation()

	if b.Update() {
		t.Fatal("Update() into x = 0 should return false")
	}
	assertBody(t, b.Snake().Body(), []GridCoord{{X: 1, Y: 1}})
	if b.FoodLocation() != food {
		t.Errorf("food moved on a rejected update: %v -> %v", food, b.FoodLocation())
	}
}

func TestUpdateSelfCollision(t *testing.T) {
	b := newTestBoard(11, GridCoord{X: 3, Y: 5}, 3)

	// Lay out a three-cell snake heading east.
	b.snake.body = []GridCoord{{X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}}
	b.food = GridCoord{X: 9, Y: 9}
	before := b.Snake().Body()

	// Reversal runs into the neck.
	b.UpdateSnakeDirection(West)
	if b.Update() {
		t.Fatal("Update() reversing into the neck should return false")
	}
	assertBody(t, b.Snake().Body(), before)
	if b.FoodLocation() != (GridCoord{X: 9, Y: 9}) {
		t.Errorf("food moved on a rejected update: %v", b.FoodLocation())
	}
}

func TestUpdateGrowth(t *testing.T) {
	b := newTestBoard(5, GridCoord{X: 2, Y: 2}, 11)
	b.food = GridCoord{X: 3, Y: 2}
	b.UpdateSnakeDirection(East)

	if !b.Update() {
		t.Fatal("Update() onto food should return true")
	}

	s := b.Snake()
	if s.Head() != (GridCoord{X: 3, Y: 2}) {
		t.Errorf("Head() = %v, expected (3, 2)", s.Head())
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
	assertFoodValid(t, b)
}

func TestUpdatePlainMove(t *testing.T) {
	b := newTestBoard(11, GridCoord{X: 5, Y: 5}, 5)
	b.food = GridCoord{X: 1, Y: 1}
	b.UpdateSnakeDirection(South)

	if !b.Update() {
		t.Fatal("Update() should return true")
	}
	assertBody(t, b.Snake().Body(), []GridCoord{{X: 5, Y: 6}})
	if b.FoodLocation() != (GridCoord{X: 1, Y: 1}) {
		t.Errorf("food should not move without eating, got %v", b.FoodLocation())
	}
}

func TestFoodInvariantRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	b := newTestBoard(9, GridCoord{X: 4, Y: 4}, 99)

	for i := 0; i < 2000; i++ {
		// Steer toward the food most of the time so the snake grows.
		if rng.Intn(4) == 0 {
			b.UpdateSnakeDirection(Direction(rng.Intn(4)))
		} else {
			b.UpdateSnakeDirection(chase(b))
		}

		before := b.Snake().Len()
		if b.Update() {
			after := b.Snake().Len()
			if after != before && after != before+1 {
				t.Fatalf("tick %d: length %d -> %d", i, before, after)
			}
		} else {
			b.Reset()
			assertBody(t, b.Snake().Body(), []GridCoord{b.InitialHead()})
		}
		assertFoodValid(t, b)
		assertBodyInterior(t, b)
	}
}

func TestReset(t *testing.T) {
	b := newTestBoard(11, GridCoord{X: 5, Y: 5}, 17)
	b.food = GridCoord{X: 6, Y: 5}
	b.Update()
	b.Update()

	if !b.Reset() {
		t.Error("Reset() should return true")
	}
	assertBody(t, b.Snake().Body(), []GridCoord{{X: 5, Y: 5}})
	if b.Snake().Direction() != East {
		t.Errorf("Direction() after reset = %v, expected east", b.Snake().Direction())
	}
	assertFoodValid(t, b)
}

func TestSnakeAccessorIsCopy(t *testing.T) {
	b := newTestBoard(11, GridCoord{X: 5, Y: 5}, 1)
	s := b.Snake()
	s.SetDirection(North)
	s.Move(true)

	if b.Snake().Len() != 1 || b.Snake().Direction() != East {
		t.Error("changing the returned snake affected the board")
	}
}

func TestSpawnFoodSingleFreeCell(t *testing.T) {
	// Interior of a size-3 grid is the 2x2 block (1..2, 1..2).
	for seed := int64(0); seed < 50; seed++ {
		b := newTestBoard(3, GridCoord{X: 1, Y: 1}, seed)
		b.snake.body = []GridCoord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
		b.spawnFood()

		if b.FoodLocation() != (GridCoord{X: 1, Y: 1}) {
			t.Fatalf("seed %d: food = %v, expected the only free cell (1, 1)", seed, b.FoodLocation())
		}
	}
}

func TestBoardCleared(t *testing.T) {
	b := newTestBoard(3, GridCoord{X: 1, Y: 1}, 4)
	b.snake.body = []GridCoord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	b.spawnFood()
	b.UpdateSnakeDirection(West)

	if !b.Update() {
		t.Fatal("Update() onto the last free cell should return true")
	}
	if !b.Cleared() {
		t.Error("Cleared() = false after filling the board")
	}
	if b.FoodLocation() != NoFood {
		t.Errorf("FoodLocation() = %v, expected NoFood", b.FoodLocation())
	}
	if b.FreeCells() != 0 {
		t.Errorf("FreeCells() = %d, expected 0", b.FreeCells())
	}

	// Every neighbour is now a wall or body.
	if b.Update() {
		t.Error("Update() on a full board should return false")
	}

	b.Reset()
	if b.Cleared() {
		t.Error("Reset() should clear the cleared flag")
	}
	assertFoodValid(t, b)
}

func TestSameSeedSameFood(t *testing.T) {
	a := newTestBoard(15, GridCoord{X: 7, Y: 7}, 123)
	b := newTestBoard(15, GridCoord{X: 7, Y: 7}, 123)

	for i := 0; i < 20; i++ {
		if a.FoodLocation() != b.FoodLocation() {
			t.Fatalf("round %d: food %v vs %v", i, a.FoodLocation(), b.FoodLocation())
		}
		a.Reset()
		b.Reset()
	}
}

// chase returns a heading that moves the head toward the food.
func chase(b *Board) Direction {
	head, food := b.Snake().Head(), b.FoodLocation()
	switch {
	case food.X > head.X:
		return East
	case food.X < head.X:
		return West
	case food.Y > head.Y:
		return South
	default:
		return North
	}
}

func assertFoodValid(t *testing.T, b *Board) {
	t.Helper()
	food := b.FoodLocation()
	if b.IsWall(food) {
		t.Fatalf("food %v is on a wall", food)
	}
	if b.Snake().Has(food) {
		t.Fatalf("food %v is on the snake %v", food, b.Snake().Body())
	}
}

func assertBodyInterior(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[GridCoord]bool)
	for _, c := range b.Snake().Body() {
		if b.IsWall(c) {
			t.Fatalf("body cell %v is on a wall", c)
		}
		if seen[c] {
			t.Fatalf("body cell %v is duplicated in %v", c, b.Snake().Body())
		}
		seen[c] = true
	}
}
