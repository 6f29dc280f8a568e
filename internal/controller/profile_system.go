package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"github.com/pavelmamonov20/furnitura/internal/util"
	"gorm.io/gorm"
)

type ProfileSystemController struct {
	*baseController
}

// CreateProfileSystem registers a profile system. Posting an existing
// name replaces the stored parameters, matching the placement
// calculator's registration semantics.
func (pc ProfileSystemController) CreateProfileSystem(ctx *gin.Context) {
	var body model.ProfileSystem

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	profile, err := pc.app.Repository.ProfileSystem.Upsert(ctx, nil, &body)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"profileSystem": profile})
}

func (pc ProfileSystemController) GetProfileSystems(ctx *gin.Context) {
	profiles, err := pc.app.Repository.ProfileSystem.GetAll(ctx, nil)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list profile systems", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"profileSystems": profiles})
}

func (pc ProfileSystemController) GetProfileSystemById(ctx *gin.Context) {
	id := ctx.Param("profileSystemId")

	profile, err := pc.app.Repository.ProfileSystem.GetById(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Profile system not found", util.GenerateErrorMessages(err), nil)
			return
		}
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"profileSystem": profile})
}

func (pc ProfileSystemController) UpdateProfileSystem(ctx *gin.Context) {
	id := ctx.Param("profileSystemId")

	var body model.ProfileSystem
	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := pc.app.Repository.ProfileSystem.GetById(ctx, nil, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Profile system not found", util.GenerateErrorMessages(err), nil)
			return
		}
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	body.ID = id
	profile, err := pc.app.Repository.ProfileSystem.Update(ctx, nil, &body)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"profileSystem": profile})
}

func (pc ProfileSystemController) DeleteProfileSystem(ctx *gin.Context) {
	id := ctx.Param("profileSystemId")

	if err := pc.app.Repository.ProfileSystem.Delete(ctx, nil, id); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
