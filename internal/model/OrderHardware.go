package model

// OrderHardware pins one catalog component to an order at a computed
// placement. XPosition/YPosition are millimeters from the top-left
// corner of the window.
type OrderHardware struct {
	BaseModel
	OrderID     string            `gorm:"type:text;not null;index" json:"orderId" form:"orderId"`
	ComponentID string            `gorm:"type:text;not null" json:"componentId" form:"componentId" binding:"required"`
	Component   HardwareComponent `json:"component"`
	Quantity    int               `gorm:"type:integer;default:1" json:"quantity" form:"quantity"`
	XPosition   float64           `gorm:"type:numeric" json:"xPosition" form:"xPosition"`
	YPosition   float64           `gorm:"type:numeric" json:"yPosition" form:"yPosition"`
	Rotation    float64           `gorm:"type:numeric;default:0" json:"rotation" form:"rotation"`
	Notes       string            `gorm:"type:text" json:"notes" form:"notes"`
}

func (oh OrderHardware) TableName() string {
	return "order_hardware"
}
