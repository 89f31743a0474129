package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"brigade/components"
	"brigade/kitchen"
)

var (
	floorColor    = rl.NewColor(46, 42, 38, 255)
	zoneColor     = rl.NewColor(72, 66, 58, 255)
	zoneLineColor = rl.NewColor(140, 130, 115, 255)
	hudColor      = rl.NewColor(235, 230, 220, 255)
	noticeColor   = rl.NewColor(255, 200, 90, 255)

	chefColors = []rl.Color{
		rl.NewColor(90, 170, 255, 255),
		rl.NewColor(255, 140, 120, 255),
		rl.NewColor(170, 220, 120, 255),
	}

	ingredientColors = map[string]rl.Color{
		"L": rl.NewColor(120, 200, 90, 255),
		"T": rl.NewColor(230, 80, 70, 255),
		"B": rl.NewColor(210, 170, 110, 255),
		"C": rl.NewColor(250, 215, 90, 255),
		"H": rl.NewColor(170, 70, 60, 255),
	}
)

// Draw renders the kitchen, chefs, and HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(floorColor)

	g.drawKitchen()
	g.drawStock()
	g.drawChefs()
	g.drawHUD()
	g.drawChefPanel()

	if g.session.Ended() {
		g.drawSummary()
	}

	rl.EndDrawing()
}

func (g *Game) drawKitchen() {
	drawZone(g.layout.Fridge, "FRIDGE")
	drawZone(g.layout.Board, "CUTTING BOARD")
	drawZone(g.layout.Plating, "PLATING")
	drawZone(g.layout.Delivery, "DELIVERY")

	b := g.layout.Bounds
	rl.DrawRectangleLines(
		int32(b.MinX), int32(b.MinY),
		int32(b.MaxX-b.MinX), int32(b.MaxY-b.MinY),
		zoneLineColor,
	)
}

func drawZone(z kitchen.Zone, label string) {
	rl.DrawRectangle(int32(z.X), int32(z.Y), int32(z.W), int32(z.H), zoneColor)
	rl.DrawRectangleLines(int32(z.X), int32(z.Y), int32(z.W), int32(z.H), zoneLineColor)
	rl.DrawText(label, int32(z.X)+4, int32(z.Y)-16, 12, zoneLineColor)
}

func (g *Game) drawStock() {
	now := g.Now()
	for _, u := range g.stock.Units() {
		c, ok := ingredientColors[u.Type]
		if !ok {
			c = rl.Gray
		}
		if now < u.SpawnAt {
			c = rl.Fade(c, 0.35)
		}
		rl.DrawCircle(int32(u.Pos.X), int32(u.Pos.Y), 6, c)
		rl.DrawText(u.Type, int32(u.Pos.X)-3, int32(u.Pos.Y)-5, 10, rl.Black)
	}
}

func (g *Game) drawChefs() {
	now := g.Now()
	for i, e := range g.chefs {
		pos := g.posMap.Get(e)
		chef := g.chefMap.Get(e)

		c := chefColors[i%len(chefColors)]
		rl.DrawCircle(int32(pos.X), int32(pos.Y), 12, c)
		rl.DrawText(chef.Name, int32(pos.X)-20, int32(pos.Y)-28, 12, hudColor)
		rl.DrawText(chef.State.String(), int32(pos.X)-24, int32(pos.Y)+16, 10, rl.LightGray)

		switch chef.Held.Kind {
		case components.HeldIngredient:
			ic, ok := ingredientColors[chef.Held.Ingredient]
			if !ok {
				ic = rl.Gray
			}
			rl.DrawCircle(int32(pos.X)+10, int32(pos.Y)-10, 5, ic)
		case components.HeldDish:
			rl.DrawCircle(int32(pos.X)+10, int32(pos.Y)-10, 6, rl.White)
		}

		// Work progress bar
		var progress float64
		if chef.Chopping() {
			dur := g.env.PrepDuration(chef.ChopType, chef.Motivation)
			if dur > 0 {
				progress = (now - chef.ChopStart) / dur
			}
		} else if chef.Plating {
			progress = (now - chef.PlateStart) / g.env.PlatingDuration
		}
		if progress > 0 {
			if progress > 1 {
				progress = 1
			}
			rl.DrawRectangle(int32(pos.X)-15, int32(pos.Y)-20, 30, 4, rl.DarkGray)
			rl.DrawRectangle(int32(pos.X)-15, int32(pos.Y)-20, int32(30*progress), 4, rl.Green)
		}
	}
}

func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("TIME %4.1f", g.session.Remaining()), 20, 16, 24, hudColor)
	rl.DrawText(fmt.Sprintf("SCORE %d", g.session.Score()), 180, 16, 24, hudColor)
	if combo := g.session.Combo(); combo > 1 {
		rl.DrawText(fmt.Sprintf("COMBO x%d", combo), 340, 16, 24, noticeColor)
	}
	rl.DrawText(
		fmt.Sprintf("orders: %d pending / %d active  [%s]",
			g.book.PendingCount(), g.book.ActiveCount(), g.policy.Name()),
		20, 46, 14, rl.LightGray,
	)
	g.hud.DrawBar(20, 68, "shift", 1-g.session.Remaining()/g.cfg.Session.Duration, 260)

	// Order entry
	prompt := "order> " + g.inputBuffer
	rl.DrawText(prompt, 20, int32(g.cfg.Screen.Height)-70, 18, hudColor)
	if g.notice != "" && g.Now() < g.noticeUntil {
		rl.DrawText(g.notice, 20, int32(g.cfg.Screen.Height)-46, 16, noticeColor)
	}

	// One-click order buttons
	x := float32(20)
	y := float32(g.cfg.Screen.Height) - 110
	for _, name := range g.catalog.Names() {
		w := float32(rl.MeasureText(name, 10)) + 24
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, name) {
			g.submitFromInput(name)
		}
		x += w + 8
	}

	label := "policy: " + g.policy.Name()
	w := float32(rl.MeasureText(label, 10)) + 24
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, label) {
		g.TogglePolicy()
	}

	if g.paused {
		rl.DrawText("PAUSED", int32(g.cfg.Screen.Width)/2-50, 80, 28, noticeColor)
	}
}

// drawChefPanel shows per-chef details in the top-right corner.
func (g *Game) drawChefPanel() {
	const panelW = 240
	x := int32(g.cfg.Screen.Width) - panelW - 10
	y := int32(10)
	h := int32(14 + len(g.chefs)*66)

	g.hud.DrawPanel(x, y, panelW, h)
	row := y + 8
	for _, cv := range g.Leaderboard() {
		row = g.hud.DrawSectionHeader(x+8, row, cv.Name)
		row = g.hud.DrawLabelValue(x+8, row, "delivered",
			fmt.Sprintf("%d (%d pts)", cv.Delivered, cv.Score))
		row = g.hud.DrawMeter(x+8, row, "motivation", cv.Motivation, g.cfg.Motivation.Max, panelW-16)
	}
}

func (g *Game) drawSummary() {
	w := int32(g.cfg.Screen.Width)
	h := int32(g.cfg.Screen.Height)
	rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, 0.7))

	s := g.finalSummary
	if s == nil {
		return
	}

	const panelW, panelH = 360, 280
	px := w/2 - panelW/2
	py := h/2 - panelH/2
	g.hud.DrawPanel(px, py, panelW, panelH)

	y := g.hud.DrawSectionHeader(px+20, py+16, "SERVICE OVER")
	y += 8
	y = g.hud.DrawLabelValue(px+20, y, "score", fmt.Sprintf("%d", s.Score))
	y = g.hud.DrawAccent(px+20, y, s.Tier)
	y = g.hud.DrawLabelValue(px+20, y, "deliveries", fmt.Sprintf("%d", s.Deliveries))
	y = g.hud.DrawLabelValue(px+20, y, "best combo", fmt.Sprintf("x%d", s.ComboPeak))
	if s.Deliveries > 0 {
		y = g.hud.DrawLabelValue(px+20, y, "avg delivery",
			fmt.Sprintf("%.1fs (%.1f-%.1f)", s.MeanDuration, s.MinDuration, s.MaxDuration))
	}
	if g.finalRank > 0 {
		g.hud.DrawAccent(px+20, y, fmt.Sprintf("leaderboard rank #%d", g.finalRank))
	}
}
