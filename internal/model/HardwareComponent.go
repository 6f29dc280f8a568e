package model

// HardwareComponent is a catalog entry for a hardware item (hinge,
// handle, lock, ...). Width, height and depth are millimeters.
type HardwareComponent struct {
	BaseModel
	ArticleNumber  string  `gorm:"type:varchar(50);not null;uniqueIndex" json:"articleNumber" form:"articleNumber" binding:"required,strNotEmpty,cmax=50"`
	Name           string  `gorm:"type:varchar(200);not null" json:"name" form:"name" binding:"required,strNotEmpty,cmax=200"`
	Category       string  `gorm:"type:varchar(50)" json:"category" form:"category"`
	Description    string  `gorm:"type:text" json:"description" form:"description"`
	Width          float64 `gorm:"type:numeric" json:"width" form:"width"`
	Height         float64 `gorm:"type:numeric" json:"height" form:"height"`
	Depth          float64 `gorm:"type:numeric" json:"depth" form:"depth"`
	MountingPoints string  `gorm:"type:jsonb;default:'[]'" json:"mountingPoints" form:"mountingPoints"`
	Manufacturer   string  `gorm:"type:varchar(100)" json:"manufacturer" form:"manufacturer"`
	Supplier       string  `gorm:"type:varchar(100)" json:"supplier" form:"supplier"`
	Price          float64 `gorm:"type:numeric" json:"price" form:"price"`
}

func (hc HardwareComponent) TableName() string {
	return "hardware_components"
}
