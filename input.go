package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the player's intent for one frame.
type Input struct {
	Click  bool
	ClickX int
	ClickY int

	NewGame  bool
	Hint     bool
	Shuffle  bool
	Autoplay bool
	Copy     bool

	touches []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Update() {
	in.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if in.Click {
		in.ClickX, in.ClickY = ebiten.CursorPosition()
	}

	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	if !in.Click && len(in.touches) > 0 {
		in.Click = true
		in.ClickX, in.ClickY = ebiten.TouchPosition(in.touches[0])
	}

	in.NewGame = inpututil.IsKeyJustPressed(ebiten.KeyN)
	in.Hint = inpututil.IsKeyJustPressed(ebiten.KeyH)
	in.Shuffle = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.Autoplay = inpututil.IsKeyJustPressed(ebiten.KeyA)
	in.Copy = inpututil.IsKeyJustPressed(ebiten.KeyC)
}
