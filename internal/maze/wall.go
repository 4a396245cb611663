package maze

import "github.com/KostyaKondratenko/DesignPatterns/internal/logger"

// Wall is a side that cannot be walked through
type Wall struct {
	bombed bool
}

func NewWall() *Wall {
	return &Wall{}
}

// NewBombedWall creates a wall rigged with a bomb
func NewBombedWall() *Wall {
	return &Wall{bombed: true}
}

// Bombed reports whether the wall carries a bomb
func (w *Wall) Bombed() bool {
	return w.bombed
}

func (w *Wall) Enter() {
	logger.Debug("Bumped into wall", "bombed", w.bombed)
}

func (w *Wall) Clone() *Wall {
	return &Wall{bombed: w.bombed}
}
