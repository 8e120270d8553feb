package v1

import (
	"net/http"

	"edu-finder-backend/internal/delivery/http/response"
	"edu-finder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedHandler struct {
	savedUC domain.SavedUsecase
}

func NewSavedHandler(r *gin.RouterGroup, savedUC domain.SavedUsecase) {
	handler := &SavedHandler{savedUC: savedUC}

	saved := r.Group("/saved")
	{
		saved.GET("", handler.List)
		saved.POST("/:id/toggle", handler.Toggle)
	}
}

// List godoc
// @Summary      Saved items
// @Description  Saved ids in save order and the records they resolve to
// @Tags         saved
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SavedItems}
// @Router       /saved [get]
// @Security     ClientToken
func (h *SavedHandler) List(c *gin.Context) {
	items, err := h.savedUC.ListSavedItems(c.Request.Context(), clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved items", items)
}

// Toggle godoc
// @Summary      Toggle saved
// @Description  Saves the record if absent, removes it otherwise
// @Tags         saved
// @Produce      json
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  response.Response{data=domain.ToggleResult}
// @Failure      404  {object}  response.Response
// @Router       /saved/{id}/toggle [post]
// @Security     ClientToken
func (h *SavedHandler) Toggle(c *gin.Context) {
	result, err := h.savedUC.ToggleSaved(c.Request.Context(), clientID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Removed from tracker"
	if result.Saved {
		msg = "Saved to tracker"
	}
	response.Success(c, http.StatusOK, msg, result)
}
