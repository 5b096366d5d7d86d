package game

import (
	"fmt"

	"github.com/trytobebee/termsnake/pkg/config"
)

// Sink draws characters on a grid addressed in board coordinates
type Sink interface {
	DrawChar(x, y int, ch rune)
	EraseChar(x, y int)
	DrawText(x, y int, text string)
	Flush() error
}

func drawBoard(sink Sink, b *Board) {
	for _, w := range b.Walls() {
		sink.DrawChar(w.X, w.Y, config.CharWall)
	}
}

func drawApple(sink Sink, b *Board) {
	if p, ok := b.Apple(); ok {
		sink.DrawChar(p.X, p.Y, config.CharApple)
	}
}

func drawSnake(sink Sink, b *Board, body []Point) {
	for i, p := range body {
		if !b.InBounds(p) {
			continue
		}
		if i == 0 {
			sink.DrawChar(p.X, p.Y, config.CharHead)
		} else {
			sink.DrawChar(p.X, p.Y, config.CharBody)
		}
	}
}

func eraseSnake(sink Sink, b *Board, body []Point) {
	for _, p := range body {
		if b.InBounds(p) {
			sink.EraseChar(p.X, p.Y)
		}
	}
}

func drawHUD(sink Sink, g *Game) {
	x := g.Board.Width + config.HUDOffset
	y := g.Board.Height / 2
	stats := g.Stats()

	if g.opts.Apples {
		sink.DrawText(x, y, fmt.Sprintf("Apples eaten: %d/%d", stats.ApplesEaten, stats.MaxApples))
	} else {
		sink.DrawText(x, y, fmt.Sprintf("Moves: %d", stats.Ticks))
	}
	sink.DrawText(x, y+1, fmt.Sprintf("Length: %d", stats.Length))
}

func drawPause(sink Sink, g *Game, paused bool) {
	x := g.Board.Width + config.HUDOffset
	y := g.Board.Height/2 + 3
	if paused {
		sink.DrawText(x, y, "PAUSED")
	} else {
		sink.DrawText(x, y, "")
	}
}
