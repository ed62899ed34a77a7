package v1

import (
	"net/http"

	"interview-marketplace-backend/internal/delivery/http/middleware"
	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, write gin.HandlerFunc, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	candidates := r.Group("/candidates/:id")
	{
		candidates.GET("", handler.GetCandidate)
		candidates.PUT("/profile", middleware.RequireRole(domain.RoleCandidate), write, handler.UpdateCandidate)
		candidates.GET("/profile-completion", handler.CandidateCompletion)
	}

	interviewers := r.Group("/interviewers/:id")
	{
		interviewers.GET("", handler.GetInterviewer)
		interviewers.PUT("/profile", middleware.RequireRole(domain.RoleInterviewer), write, handler.UpdateInterviewer)
		interviewers.GET("/profile-completion", handler.InterviewerCompletion)
	}
}

// GetCandidate godoc
// @Summary      Get candidate
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.profileUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", candidate)
}

// GetInterviewer godoc
// @Summary      Get interviewer
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Success      200  {object}  response.Response{data=domain.Interviewer}
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetInterviewer(c *gin.Context) {
	interviewer, err := h.profileUC.GetInterviewer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviewer profile", interviewer)
}

// UpdateCandidate godoc
// @Summary      Update candidate profile
// @Description  Returns the profile completion after the update.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Param        request body domain.Candidate true "Profile"
// @Success      200  {object}  response.Response{data=domain.ProfileCompletion}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateCandidate(c *gin.Context) {
	var req domain.Candidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")

	completion, err := h.profileUC.UpdateCandidateProfile(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", completion)
}

// UpdateInterviewer godoc
// @Summary      Update interviewer profile
// @Description  Returns the profile completion after the update.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Param        request body domain.Interviewer true "Profile"
// @Success      200  {object}  response.Response{data=domain.ProfileCompletion}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id}/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateInterviewer(c *gin.Context) {
	var req domain.Interviewer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")

	completion, err := h.profileUC.UpdateInterviewerProfile(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", completion)
}

// CandidateCompletion godoc
// @Summary      Candidate profile completion
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.ProfileCompletion}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/profile-completion [get]
// @Security     BearerAuth
func (h *ProfileHandler) CandidateCompletion(c *gin.Context) {
	completion, err := h.profileUC.GetCandidateProfileCompletion(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile completion", completion)
}

// InterviewerCompletion godoc
// @Summary      Interviewer profile completion
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Success      200  {object}  response.Response{data=domain.ProfileCompletion}
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id}/profile-completion [get]
// @Security     BearerAuth
func (h *ProfileHandler) InterviewerCompletion(c *gin.Context) {
	completion, err := h.profileUC.GetInterviewerProfileCompletion(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile completion", completion)
}
