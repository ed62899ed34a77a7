package v1

import (
	"net/http"

	"interview-marketplace-backend/internal/delivery/http/middleware"
	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUC domain.AvailabilityUsecase
}

func NewAvailabilityHandler(r *gin.RouterGroup, write gin.HandlerFunc, availabilityUC domain.AvailabilityUsecase) {
	handler := &AvailabilityHandler{availabilityUC: availabilityUC}

	interviewers := r.Group("/interviewers/:id")
	{
		interviewers.GET("/availability", handler.List)
		interviewers.POST("/availability", middleware.RequireRole(domain.RoleInterviewer), write, handler.Add)
		interviewers.GET("/available-slots", handler.AvailableSlots)
	}
	r.DELETE("/availability/:windowId", middleware.RequireRole(domain.RoleInterviewer), write, handler.Remove)
}

// List godoc
// @Summary      List availability windows
// @Tags         availability
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Success      200  {object}  response.Response{data=[]domain.AvailabilityWindow}
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id}/availability [get]
// @Security     BearerAuth
func (h *AvailabilityHandler) List(c *gin.Context) {
	windows, err := h.availabilityUC.ListAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Availability", windows)
}

// Add godoc
// @Summary      Add availability windows
// @Description  Windows already present are skipped. Returns the full list after the insert.
// @Tags         availability
// @Accept       json
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Param        request body domain.Availability true "Windows to add"
// @Success      201  {object}  response.Response{data=[]domain.AvailabilityWindow}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id}/availability [post]
// @Security     BearerAuth
func (h *AvailabilityHandler) Add(c *gin.Context) {
	var req domain.Availability
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	windows, err := h.availabilityUC.AddAvailability(c.Request.Context(), c.Param("id"), req.Dates)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Availability added successfully", windows)
}

// Remove godoc
// @Summary      Remove an availability window
// @Tags         availability
// @Produce      json
// @Param        windowId path string true "Window ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /availability/{windowId} [delete]
// @Security     BearerAuth
func (h *AvailabilityHandler) Remove(c *gin.Context) {
	if err := h.availabilityUC.RemoveAvailability(c.Request.Context(), c.Param("windowId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Availability removed", nil)
}

// AvailableSlots godoc
// @Summary      Bookable slots
// @Description  Availability windows that have not started yet and are not booked.
// @Tags         availability
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Success      200  {object}  response.Response{data=[]domain.AvailabilityWindow}
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id}/available-slots [get]
// @Security     BearerAuth
func (h *AvailabilityHandler) AvailableSlots(c *gin.Context) {
	slots, err := h.availabilityUC.GetAvailableSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Available slots", slots)
}
