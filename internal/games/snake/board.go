package snake

import (
	"math/rand"
	"time"
)

// Board owns the grid, the snake and the food, and runs one tick per Update.
//
// Cells with x or y equal to 0 or to gridSize are walls; the playable
// interior is 1..gridSize-1 on both axes. A Board is not safe for
// concurrent use.
type Board struct {
	gridSize    int
	initialHead GridCoord
	initialDir  Direction
	snake       *Snake
	food        GridCoord
	cleared     bool
	rng         *rand.Rand
}

// NewBoard builds a snake at initialHead and spawns the first food.
// initialHead must lie inside the playable interior; it is not checked.
// A nil rng is replaced by a time-seeded one. The rng is used for every
// spawn for the board's whole life, so a seeded rng gives a reproducible game.
func NewBoard(gridSize int, initialHead GridCoord, initialDir Direction, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Board{
		gridSize:    gridSize,
		initialHead: initialHead,
		initialDir:  initialDir,
		rng:         rng,
	}
	b.Reset()
	return b
}

// GridSize returns the side of the grid.
func (b *Board) GridSize() int {
	return b.gridSize
}

// Snake returns a copy of the snake. Changes to it do not affect the board.
func (b *Board) Snake() *Snake {
	return b.snake.clone()
}

// FoodLocation returns the food cell, or NoFood once the board is cleared.
func (b *Board) FoodLocation() GridCoord {
	return b.food
}

// Cleared reports whether the snake fills every interior cell.
func (b *Board) Cleared() bool {
	return b.cleared
}

// InitialHead returns the cell a reset snake starts on.
func (b *Board) InitialHead() GridCoord {
	return b.initialHead
}

// UpdateSnakeDirection changes the snake's heading. Allowed at any time.
func (b *Board) UpdateSnakeDirection(d Direction) {
	b.snake.SetDirection(d)
}

// IsWall reports whether c lies outside the playable interior.
func (b *Board) IsWall(c GridCoord) bool {
	return c.X <= 0 || c.X >= b.gridSize || c.Y <= 0 || c.Y >= b.gridSize
}

// IsCollision reports whether moving the head to c would end the game:
// c is a wall cell or is occupied by the snake.
func (b *Board) IsCollision(c GridCoord) bool {
	return b.IsWall(c) || b.snake.Has(c)
}

// Update advances the simulation by one tick. It returns false when the next
// head cell is a collision; nothing is changed in that case.
func (b *Board) Update() bool {
	next := b.snake.NextHead()
	if b.IsCollision(next) {
		return false
	}

	hasEatenFood := next == b.food
	b.snake.Move(hasEatenFood)

	// Spawned after the move: new food never lands under the new head.
	if hasEatenFood {
		b.spawnFood()
	}
	return true
}

// Reset replaces the snake with a fresh one at the initial cell and respawns
// the food. It always returns true.
func (b *Board) Reset() bool {
	s := NewSnake(b.initialHead)
	s.SetDirection(b.initialDir)
	b.snake = s
	b.cleared = false
	b.spawnFood()
	return true
}

// FreeCells returns how many interior cells the snake does not occupy.
func (b *Board) FreeCells() int {
	if b.gridSize < 2 {
		return 0
	}
	interior := (b.gridSize - 1) * (b.gridSize - 1)
	return max(0, interior-b.snake.Len())
}

// spawnFood places the food by rejection sampling: x and y are drawn uniformly
// from [0, gridSize-1] until the cell is not a collision. When no free cell is
// left the board is marked cleared instead of sampling forever.
func (b *Board) spawnFood() {
	if b.FreeCells() == 0 {
		b.food = NoFood
		b.cleared = true
		return
	}

	for {
		c := GridCoord{X: b.rng.Intn(b.gridSize), Y: b.rng.Intn(b.gridSize)}
		if !b.IsCollision(c) {
			b.food = c
			return
		}
	}
}
