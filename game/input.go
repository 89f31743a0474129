package game

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"brigade/orders"
)

const maxOrderInputLen = 24

// handleInput processes keyboard input: typed order entry plus pause.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) && g.inputBuffer == "" {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.inputBuffer = ""
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(g.inputBuffer) > 0 {
		g.inputBuffer = g.inputBuffer[:len(g.inputBuffer)-1]
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if len(g.inputBuffer) >= maxOrderInputLen {
			break
		}
		// Dish names are lowercase words with underscores.
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' {
			g.inputBuffer += string(ch)
		}
	}

	if rl.IsKeyPressed(rl.KeyEnter) && g.inputBuffer != "" {
		g.submitFromInput(g.inputBuffer)
		g.inputBuffer = ""
	}

	if rl.IsKeyPressed(rl.KeyDelete) {
		g.CancelPendingOrder()
	}
}

// submitFromInput submits a typed dish name and posts the HUD notice.
func (g *Game) submitFromInput(dish string) {
	o, err := g.SubmitOrder(dish)
	switch {
	case errors.Is(err, orders.ErrUnknownRecipe):
		g.setNotice(fmt.Sprintf("unknown dish: %s", dish))
	case errors.Is(err, ErrSessionEnded):
		g.setNotice("kitchen closed")
	case err == nil:
		g.setNotice(fmt.Sprintf("order up: %s", o.Dish))
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeUntil = g.Now() + 3
}
