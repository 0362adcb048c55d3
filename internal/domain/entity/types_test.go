package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := NewRect(10, 10, 8, 8)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", NewRect(10, 10, 8, 8), true},
		{"partial overlap", NewRect(14, 14, 8, 8), true},
		{"contained", NewRect(12, 12, 2, 2), true},
		{"touching right edge", NewRect(18, 10, 8, 8), false},
		{"touching bottom edge", NewRect(10, 18, 8, 8), false},
		{"far away", NewRect(100, 100, 8, 8), false},
		{"one pixel inside", NewRect(17, 17, 8, 8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(4, 6, 10, 20)
	assert.Equal(t, 14.0, r.Right())
	assert.Equal(t, 26.0, r.Bottom())
}

func TestLevel_GroundAndPlatforms(t *testing.T) {
	l := Level{
		Stage: []StageBlock{
			{Rect: NewRect(0, 132, 100, 28), Material: MaterialGround},
			{Rect: NewRect(140, 132, 100, 28), Material: MaterialGround},
			{Rect: NewRect(120, 92, 50, 8), Material: MaterialPlatform},
		},
	}

	assert.Len(t, l.Ground(), 2)
	assert.Len(t, l.Platforms(), 1)
	assert.Equal(t, 140.0, l.Ground()[1].X)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Ground", MaterialGround.String())
	assert.Equal(t, "Platform", MaterialPlatform.String())
	assert.Equal(t, "Unknown", Material(9).String())
	assert.Equal(t, "Coin", PickupCoin.String())
	assert.Equal(t, "Heart", PickupHeart.String())
	assert.Equal(t, "Upgrade", PickupUpgrade.String())
	assert.Equal(t, "Shooter", EnemyShooter.String())
	assert.Equal(t, "Charge", WeaponCharge.String())
	assert.Equal(t, "Unknown", WeaponType(7).String())
}
