package v1

import (
	"net/http"

	"interview-marketplace-backend/internal/delivery/http/middleware"
	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/rating"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUC domain.FeedbackUsecase
}

type FeedbackRequest struct {
	InterviewRequestID string                    `json:"interview_request_id" binding:"required"`
	Feedback           map[string]rating.Section `json:"feedback" binding:"required"`
}

func NewFeedbackHandler(r *gin.RouterGroup, write gin.HandlerFunc, feedbackUC domain.FeedbackUsecase) {
	handler := &FeedbackHandler{feedbackUC: feedbackUC}

	// The path id is the subject receiving the feedback; the other party submits it.
	r.POST("/interviewers/:id/feedback", middleware.RequireRole(domain.RoleCandidate), write, handler.AddInterviewerFeedback)
	r.POST("/candidates/:id/feedback", middleware.RequireRole(domain.RoleInterviewer), write, handler.AddCandidateFeedback)
	r.GET("/candidates/:id/statistics", handler.CandidateStatistics)
	r.GET("/interviewers/:id/statistics", handler.InterviewerStatistics)
}

// AddInterviewerFeedback godoc
// @Summary      Rate an interviewer
// @Description  Records the candidate's feedback, marks the interview Completed and updates the interviewer's statistics. One submission per interview.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Param        request body FeedbackRequest true "Section ratings"
// @Success      201  {object}  response.Response{data=domain.FeedbackEntry}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviewers/{id}/feedback [post]
// @Security     BearerAuth
func (h *FeedbackHandler) AddInterviewerFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	entry, err := h.feedbackUC.AddInterviewerFeedback(c.Request.Context(), c.Param("id"), req.InterviewRequestID, req.Feedback)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Feedback submitted successfully", entry)
}

// AddCandidateFeedback godoc
// @Summary      Rate a candidate
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Param        request body FeedbackRequest true "Section ratings"
// @Success      201  {object}  response.Response{data=domain.FeedbackEntry}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /candidates/{id}/feedback [post]
// @Security     BearerAuth
func (h *FeedbackHandler) AddCandidateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	entry, err := h.feedbackUC.AddCandidateFeedback(c.Request.Context(), c.Param("id"), req.InterviewRequestID, req.Feedback)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Feedback submitted successfully", entry)
}

// CandidateStatistics godoc
// @Summary      Candidate statistics
// @Tags         feedback
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.CandidateStatistics}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/statistics [get]
// @Security     BearerAuth
func (h *FeedbackHandler) CandidateStatistics(c *gin.Context) {
	stats, err := h.feedbackUC.GetCandidateStatistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate statistics", stats)
}

// InterviewerStatistics godoc
// @Summary      Interviewer statistics
// @Tags         feedback
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Success      200  {object}  response.Response{data=domain.InterviewerStatistics}
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id}/statistics [get]
// @Security     BearerAuth
func (h *FeedbackHandler) InterviewerStatistics(c *gin.Context) {
	stats, err := h.feedbackUC.GetInterviewerStatistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviewer statistics", stats)
}
