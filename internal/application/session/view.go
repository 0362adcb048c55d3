package session

import (
	"github.com/younwookim/cave/internal/application/state"
	"github.com/younwookim/cave/internal/domain/entity"
)

// HUD holds the values shown in the heads-up display
type HUD struct {
	Health         int
	MaxHealth      int
	Score          int
	SecondsLeft    int
	Weapon         entity.WeaponType
	Ammo           int
	MaxAmmo        int
	Charge         float64 // 0..1
	WeaponsEnabled bool
}

// EnemyView is an enemy as the renderer sees it
type EnemyView struct {
	Rect entity.Rect
	Kind entity.EnemyKind
}

// BulletView is a bullet as the renderer sees it
type BulletView struct {
	Rect  entity.Rect
	Owner entity.Owner
}

// View is a read-only snapshot of everything needed to draw one frame.
// Slices are copies; mutating them does not affect the session.
type View struct {
	State   state.GameState
	CameraX float64

	Player        entity.Rect // snapped to whole pixels
	PlayerVisible bool
	Facing        int

	Stage    []entity.StageBlock
	Spikes   []entity.Rect
	Coins    []entity.Rect
	Hearts   []entity.Rect
	Upgrades []entity.Rect
	Enemies  []EnemyView
	Bullets  []BulletView
	Goal     entity.Rect

	HUD HUD

	MenuOptions []entity.WeaponType
	MenuCursor  int
}

// View returns a snapshot of the current frame
func (s *Session) View() View {
	w := s.world
	p := w.Player

	v := View{
		State:         s.state,
		CameraX:       w.CameraX,
		Player:        entity.NewRect(float64(p.PixelX()), float64(p.PixelY()), entity.Size, entity.Size),
		PlayerVisible: p.Visible(),
		Facing:        p.Facing,
		Stage:         append([]entity.StageBlock(nil), w.Stage...),
		Spikes:        append([]entity.Rect(nil), w.Spikes...),
		Coins:         pickupRects(w.Coins),
		Hearts:        pickupRects(w.Hearts),
		Upgrades:      pickupRects(w.Upgrades),
		Goal:          w.Goal,
		HUD: HUD{
			Health:         p.Health,
			MaxHealth:      p.MaxHealth,
			Score:          w.Score,
			SecondsLeft:    w.TimeLeft / s.config.Display.Framerate,
			Weapon:         p.Weapon,
			Ammo:           p.ActiveAmmo(),
			MaxAmmo:        p.ActiveMaxAmmo(),
			Charge:         s.weapons.ChargeFraction(p),
			WeaponsEnabled: s.config.Features.Weapons,
		},
	}

	v.Enemies = make([]EnemyView, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		v.Enemies = append(v.Enemies, EnemyView{Rect: e.Rect(), Kind: e.Kind()})
	}
	v.Bullets = make([]BulletView, 0, len(w.Bullets))
	for _, b := range w.Bullets {
		v.Bullets = append(v.Bullets, BulletView{Rect: b.Rect(), Owner: b.Owner})
	}

	if s.menu != nil {
		v.MenuOptions = append([]entity.WeaponType(nil), s.menu.Options...)
		v.MenuCursor = s.menu.Cursor
	}
	return v
}

func pickupRects(pickups []entity.Pickup) []entity.Rect {
	rects := make([]entity.Rect, 0, len(pickups))
	for _, p := range pickups {
		rects = append(rects, p.Rect)
	}
	return rects
}
