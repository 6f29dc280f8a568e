package model

import "github.com/pavelmamonov20/furnitura/pkg/placement"

// ProfileSystem stores the geometry of a window/door profile system.
// All dimensions are in millimeters.
type ProfileSystem struct {
	BaseModel
	Name          string  `gorm:"type:varchar(100);not null;uniqueIndex" json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
	Description   string  `gorm:"type:text" json:"description" form:"description"`
	AxisOffset    float64 `gorm:"type:numeric" json:"axisOffset" form:"axisOffset"`
	SashThickness float64 `gorm:"type:numeric" json:"sashThickness" form:"sashThickness"`
	FrameWidth    float64 `gorm:"type:numeric" json:"frameWidth" form:"frameWidth"`
	SashWidth     float64 `gorm:"type:numeric" json:"sashWidth" form:"sashWidth"`
}

func (ps ProfileSystem) TableName() string {
	return "profile_systems"
}

// ToPlacementProfile converts the stored record into the calculator's
// profile value.
func (ps ProfileSystem) ToPlacementProfile() placement.ProfileSystem {
	return placement.ProfileSystem{
		Name:          ps.Name,
		AxisOffset:    ps.AxisOffset,
		SashThickness: ps.SashThickness,
		FrameWidth:    ps.FrameWidth,
		SashWidth:     ps.SashWidth,
		Description:   ps.Description,
	}
}
