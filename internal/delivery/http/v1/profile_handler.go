package v1

import (
	"net/http"

	"edu-finder-backend/internal/delivery/http/response"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := r.Group("/profile")
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("", handler.SaveProfile)
		profile.DELETE("", handler.DeleteProfile)
		profile.GET("/options", handler.Options)
	}
}

// GetProfile godoc
// @Summary      Get eligibility profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserProfile}
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
// @Security     ClientToken
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if profile == nil {
		c.Error(apperror.NotFound("Profile not completed"))
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// SaveProfile godoc
// @Summary      Save eligibility profile
// @Description  Onboarding form. classLevel, gender, familyIncome, category, state and institution are required.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.UserProfile  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.UserProfile}
// @Failure      400      {object}  response.Response
// @Router       /profile [put]
// @Security     ClientToken
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.profileUC.SaveProfile(c.Request.Context(), clientID(c), &profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile completed! Finding your opportunities...", profile)
}

// DeleteProfile godoc
// @Summary      Delete eligibility profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [delete]
// @Security     ClientToken
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileUC.DeleteProfile(c.Request.Context(), clientID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile removed", nil)
}

// Options godoc
// @Summary      Onboarding choices
// @Description  The closed option lists accepted by the profile form
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile/options [get]
func (h *ProfileHandler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, "Profile options", domain.ProfileChoices())
}
