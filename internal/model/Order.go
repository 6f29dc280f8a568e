package model

// Order groups one window construction: its dimensions, the profile
// system it is built on and the hardware pinned to it.
type Order struct {
	BaseModel
	Name         string  `gorm:"type:varchar(100);not null" json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
	Description  string  `gorm:"type:text" json:"description" form:"description"`
	WindowWidth  float64 `gorm:"type:numeric;not null" json:"windowWidth" form:"windowWidth" binding:"required,gt=0"`
	WindowHeight float64 `gorm:"type:numeric;not null" json:"windowHeight" form:"windowHeight" binding:"required,gt=0"`

	ProfileSystemID string        `gorm:"type:text;not null" json:"profileSystemId" form:"profileSystemId" binding:"required"`
	ProfileSystem   ProfileSystem `json:"profileSystem"`

	Hardware []OrderHardware `json:"hardware"`
}

func (o Order) TableName() string {
	return "orders"
}
