package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/util"
	"github.com/pavelmamonov20/furnitura/pkg/placement"
	"gorm.io/gorm"
)

// PlacementController exposes the placement calculator over HTTP. Every
// endpoint feeds the calculator's profile registry from the database
// and leaves the coordinate math to pkg/placement.
type PlacementController struct {
	*baseController
}

// windowRequest is the shared part of every placement request.
type windowRequest struct {
	WindowWidth   float64 `json:"windowWidth" form:"windowWidth" binding:"required,gt=0"`
	WindowHeight  float64 `json:"windowHeight" form:"windowHeight" binding:"required,gt=0"`
	ProfileSystem string  `json:"profileSystem" form:"profileSystem" binding:"required,strNotEmpty"`
}

// newCalculator builds a calculator seeded with the requested profile
// system, when it exists. A missing profile is not an error here; the
// calculator reports it as UnknownProfileError during calculation.
func (pc PlacementController) newCalculator(ctx *gin.Context, profileName string) (*placement.Calculator, error) {
	calc := placement.NewCalculator()

	profile, err := pc.app.Repository.ProfileSystem.GetByName(ctx, nil, profileName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calc, nil
		}
		return nil, err
	}

	calc.RegisterProfile(profile.ToPlacementProfile())
	return calc, nil
}

// respondPlacements translates calculator results and errors into the
// response envelope. An unknown profile maps to 404; every other
// calculator input irregularity is a defined fallback, not an error.
func (pc PlacementController) respondPlacements(ctx *gin.Context, placements []placement.Placement, err error) {
	if err != nil {
		var unknownProfile *placement.UnknownProfileError
		if errors.As(err, &unknownProfile) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Profile system not found", util.GenerateErrorMessages(err, "profileSystem"), nil)
			return
		}
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to calculate placements", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"placements": placements})
}

func (pc PlacementController) PlacementsForCategory(ctx *gin.Context) {
	type Request struct {
		windowRequest
		Category string `json:"category" form:"category" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	calc, err := pc.newCalculator(ctx, body.ProfileSystem)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	placements, err := calc.PlacementsForCategory(body.WindowWidth, body.WindowHeight, body.ProfileSystem, placement.Category(body.Category))
	pc.respondPlacements(ctx, placements, err)
}

func (pc PlacementController) PlacementsFromSpecs(ctx *gin.Context) {
	type Request struct {
		windowRequest
		Specs []placement.Spec `json:"specs" form:"specs" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	calc, err := pc.newCalculator(ctx, body.ProfileSystem)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	placements, err := calc.PlacementsFromSpecs(body.WindowWidth, body.WindowHeight, body.ProfileSystem, body.Specs)
	pc.respondPlacements(ctx, placements, err)
}

func (pc PlacementController) PlacementsSymmetric(ctx *gin.Context) {
	type Request struct {
		windowRequest
		Article   string `json:"article" form:"article" binding:"required,strNotEmpty"`
		Name      string `json:"name" form:"name" binding:"required,strNotEmpty"`
		Count     int    `json:"count" form:"count"`
		Alignment string `json:"alignment" form:"alignment" binding:"required,oneof=horizontal vertical"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	calc, err := pc.newCalculator(ctx, body.ProfileSystem)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	placements, err := calc.PlacementsSymmetric(body.WindowWidth, body.WindowHeight, body.ProfileSystem, body.Article, body.Name, body.Count, placement.Alignment(body.Alignment))
	pc.respondPlacements(ctx, placements, err)
}

func (pc PlacementController) PlacementsFromExtractedData(ctx *gin.Context) {
	type Request struct {
		windowRequest
		Items []placement.ExtractedItem `json:"items" form:"items" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	calc, err := pc.newCalculator(ctx, body.ProfileSystem)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	placements, err := calc.PlacementsFromExtractedData(body.WindowWidth, body.WindowHeight, body.ProfileSystem, body.Items)
	pc.respondPlacements(ctx, placements, err)
}

func (pc PlacementController) MountingRecommendations(ctx *gin.Context) {
	var query windowRequest

	if err := ctx.ShouldBindQuery(&query); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	calc, err := pc.newCalculator(ctx, query.ProfileSystem)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	recommendations, err := calc.MountingRecommendations(query.WindowWidth, query.WindowHeight, query.ProfileSystem)
	if err != nil {
		var unknownProfile *placement.UnknownProfileError
		if errors.As(err, &unknownProfile) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Profile system not found", util.GenerateErrorMessages(err, "profileSystem"), nil)
			return
		}
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to calculate recommendations", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"recommendations": recommendations})
}
