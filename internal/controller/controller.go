package controller

import (
	appcontext "github.com/pavelmamonov20/furnitura/internal/app_context"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index         *IndexController
	ProfileSystem *ProfileSystemController
	Component     *ComponentController
	Order         *OrderController
	Placement     *PlacementController
	Report        *ReportController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:         &IndexController{baseController: bc},
		ProfileSystem: &ProfileSystemController{baseController: bc},
		Component:     &ComponentController{baseController: bc},
		Order:         &OrderController{baseController: bc},
		Placement:     &PlacementController{baseController: bc},
		Report:        &ReportController{baseController: bc},
	}
}
