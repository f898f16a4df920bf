package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady       GameStateType = "ready"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateCleared     GameStateType = "cleared"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing,
// replay and the websocket stream.
type Snapshot struct {
	Tick           uint64        `json:"tick"`
	Moves          uint64        `json:"moves"`
	Score          int           `json:"score"`
	Length         int           `json:"length"`
	GridSize       int           `json:"grid_size"`
	Head           GridCoord     `json:"head"`
	Food           GridCoord     `json:"food"`
	HasFood        bool          `json:"has_food"`
	Dir            Direction     `json:"direction"`
	Body           []GridCoord   `json:"body"` // tail to head
	MoveEveryTicks int           `json:"move_every_ticks"`
	State          GameStateType `json:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.cleared:
		state = StateCleared
	case g.gameOver:
		state = StateGameOver
	case g.paused && g.moves == 0:
		state = StateReady
	case g.paused:
		state = StatePaused
	}

	s := g.board.snake
	food := g.board.FoodLocation()
	return Snapshot{
		Tick:           g.tick,
		Moves:          g.moves,
		Score:          g.State().Score,
		Length:         s.Len(),
		GridSize:       g.board.GridSize(),
		Head:           s.Head(),
		Food:           food,
		HasFood:        food != NoFood,
		Dir:            s.Direction(),
		Body:           s.Body(),
		MoveEveryTicks: g.moveEveryTicks(),
		State:          state,
	}
}
