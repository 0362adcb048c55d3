package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/application/state"
	"github.com/younwookim/cave/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG        = colornames.Black
	colorGround    = colornames.Saddlebrown
	colorPlatform  = colornames.Peru
	colorSpike     = colornames.Red
	colorCoin      = colornames.Gold
	colorHeart     = colornames.Hotpink
	colorUpgrade   = colornames.Deepskyblue
	colorGoal      = colornames.Limegreen
	colorPlayer    = colornames.White
	colorBullet    = colornames.White
	colorEnemyShot = colornames.Yellow
	colorAmmoBG    = color.RGBA{60, 60, 60, 255}
	colorAmmoFG    = colornames.Lightskyblue
	colorOverlay   = color.RGBA{0, 0, 0, 160}
)

var enemyColors = map[entity.EnemyKind]color.RGBA{
	entity.EnemyPatrol:  colornames.Orange,
	entity.EnemyShooter: colornames.Mediumpurple,
	entity.EnemyStream:  colornames.Crimson,
	entity.EnemyChase:   colornames.Magenta,
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	v := p.session.View()
	if v.State == state.StateMenu {
		p.drawMenu(screen)
		return
	}

	p.drawWorld(screen, v)
	p.drawHUD(screen, v.HUD)

	switch v.State {
	case state.StateWeaponSelect:
		p.drawWeaponSelect(screen, v)
	case state.StateGameOver:
		p.drawEndOverlay(screen, "GAME OVER", v.HUD.Score)
	case state.StateGameClear:
		p.drawEndOverlay(screen, "GAME CLEAR!", v.HUD.Score)
	}
}

func (p *Playing) drawMenu(screen *ebiten.Image) {
	if p.frame%16 < 8 {
		ebitenutil.DebugPrintAt(screen, "START", 110, 70)
	}
	ebitenutil.DebugPrintAt(screen, "Press SPACE to Play", 80, 90)
}

func (p *Playing) drawWorld(screen *ebiten.Image, v session.View) {
	camX := v.CameraX
	fill := func(r entity.Rect, c color.Color) {
		if r.Right() < camX || r.X > camX+float64(p.screenW) {
			return
		}
		ebitenutil.DrawRect(screen, r.X-camX, r.Y, r.W, r.H, c)
	}

	for _, b := range v.Stage {
		c := colorGround
		if b.Material == entity.MaterialPlatform {
			c = colorPlatform
		}
		fill(b.Rect, c)
	}
	for _, r := range v.Spikes {
		fill(r, colorSpike)
	}
	for _, r := range v.Coins {
		fill(r, colorCoin)
	}
	for _, r := range v.Hearts {
		fill(r, colorHeart)
	}
	for _, r := range v.Upgrades {
		fill(r, colorUpgrade)
	}
	fill(v.Goal, colorGoal)

	for _, b := range v.Bullets {
		c := colorEnemyShot
		if b.Owner == entity.OwnerPlayer {
			c = colorBullet
		}
		fill(b.Rect, c)
	}
	for _, e := range v.Enemies {
		fill(e.Rect, enemyColors[e.Kind])
	}

	if v.PlayerVisible {
		fill(v.Player, colorPlayer)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image, hud session.HUD) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Health: %d", hud.Health), 5, 5)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", hud.Score), 80, 5)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %d", hud.SecondsLeft), 180, 5)

	if !hud.WeaponsEnabled {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d/%d", hud.Weapon, hud.Ammo, hud.MaxAmmo), 5, 20)

	if hud.Weapon == entity.WeaponCharge {
		barX, barY, barW, barH := 100.0, 24.0, 60.0, 6.0
		ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorAmmoBG)
		ebitenutil.DrawRect(screen, barX, barY, barW*hud.Charge, barH, colorAmmoFG)
	}
}

func (p *Playing) drawWeaponSelect(screen *ebiten.Image, v session.View) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "CHOOSE WEAPON", 90, 50)

	for i, w := range v.MenuOptions {
		label := "  " + w.String()
		if i == v.MenuCursor {
			label = "> " + w.String()
		}
		ebitenutil.DebugPrintAt(screen, label, 60+i*80, 80)
	}
	ebitenutil.DebugPrintAt(screen, "LEFT/RIGHT + SPACE", 75, 110)
}

func (p *Playing) drawEndOverlay(screen *ebiten.Image, title string, score int) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, title, 110, 70)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", score), 110, 80)
	ebitenutil.DebugPrintAt(screen, "Press R to Restart", 90, 90)
}
