package system

import "github.com/younwookim/cave/internal/domain/entity"

// CameraSystem keeps the player horizontally centered inside the world
type CameraSystem struct{}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update sets the camera offset from the player position
func (s *CameraSystem) Update(w *entity.World) {
	w.CameraX = clampFloat(w.Player.X-float64(w.ViewW)/2, 0, w.MaxCameraX())
}
