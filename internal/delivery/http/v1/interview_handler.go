package v1

import (
	"net/http"

	"interview-marketplace-backend/internal/delivery/http/middleware"
	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

type UpdateStatusRequest struct {
	Status domain.InterviewStatus `json:"status" binding:"required"`
}

type RescheduleDecisionRequest struct {
	CandidateID string `json:"candidate_id" form:"candidate_id"`
}

// NewInterviewHandler registers the interview routes. The emailed reschedule
// links are public GETs authorized by their signed token alone.
func NewInterviewHandler(public, r *gin.RouterGroup, write gin.HandlerFunc, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	public.GET("/interviews/:id/reschedule/approve", handler.RescheduleLink(domain.RescheduleActionApprove))
	public.GET("/interviews/:id/reschedule/reject", handler.RescheduleLink(domain.RescheduleActionReject))

	interviews := r.Group("/interviews")
	{
		interviews.POST("", middleware.RequireRole(domain.RoleCandidate), write, handler.Schedule)
		interviews.PATCH("/:id/status", middleware.RequireRole(domain.RoleInterviewer), write, handler.UpdateStatus)
		interviews.POST("/:id/reschedule", write, handler.RequestReschedule)
		interviews.POST("/:id/reschedule/approve", write, handler.ApproveReschedule)
		interviews.POST("/:id/reschedule/reject", write, handler.RejectReschedule)
		interviews.GET("/:id/history", handler.History)
	}

	r.GET("/candidates/:id/interviews", handler.ListForCandidate)
	r.GET("/interviewers/:id/requests", handler.ListForInterviewer)
}

// Schedule godoc
// @Summary      Schedule an interview
// @Description  Book an interviewer's availability window. Creates the candidate's scheduled interview and the interviewer's request with status Requested.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        request body domain.ScheduleRequest true "Slot to book"
// @Success      201  {object}  response.Response{data=domain.ScheduledInterview}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req domain.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	scheduled, err := h.interviewUC.ScheduleInterview(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled successfully", scheduled)
}

// ListForCandidate godoc
// @Summary      List a candidate's interviews
// @Tags         interviews
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Success      200  {object}  response.Response{data=[]domain.ScheduledInterview}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListForCandidate(c *gin.Context) {
	interviews, err := h.interviewUC.ListScheduledInterviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Scheduled interviews", interviews)
}

// ListForInterviewer godoc
// @Summary      List an interviewer's requests
// @Tags         interviews
// @Produce      json
// @Param        id path string true "Interviewer ID"
// @Success      200  {object}  response.Response{data=[]domain.InterviewRequest}
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id}/requests [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListForInterviewer(c *gin.Context) {
	requests, err := h.interviewUC.ListInterviewRequests(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview requests", requests)
}

// UpdateStatus godoc
// @Summary      Approve or cancel an interview request
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id path string true "Interview request ID"
// @Param        request body UpdateStatusRequest true "Target status"
// @Success      200  {object}  response.Response{data=domain.InterviewRequest}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews/{id}/status [patch]
// @Security     BearerAuth
func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	updated, err := h.interviewUC.UpdateInterviewRequest(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview request updated", updated)
}

// RequestReschedule godoc
// @Summary      Request a new time for an interview
// @Description  Date is DD/MM/YYYY and times use the 12-hour clock. The other party receives approve and reject links.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id path string true "Interview request ID"
// @Param        request body domain.RescheduleRequest true "Proposed time"
// @Success      200  {object}  response.Response{data=domain.InterviewRequest}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews/{id}/reschedule [post]
// @Security     BearerAuth
func (h *InterviewHandler) RequestReschedule(c *gin.Context) {
	var req domain.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.InterviewRequestID = c.Param("id")
	req.RequestedBy = domain.RoleCandidate
	if c.GetString(string(domain.KeyUserRole)) == domain.RoleInterviewer {
		req.RequestedBy = domain.RoleInterviewer
	}

	updated, err := h.interviewUC.RequestReschedule(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reschedule requested", updated)
}

// ApproveReschedule godoc
// @Summary      Approve a pending reschedule
// @Tags         interviews
// @Produce      json
// @Param        id path string true "Interview request ID"
// @Param        candidate_id query string true "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.InterviewRequest}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews/{id}/reschedule/approve [post]
// @Security     BearerAuth
func (h *InterviewHandler) ApproveReschedule(c *gin.Context) {
	candidateID, err := decisionCandidate(c)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.interviewUC.ApproveReschedule(c.Request.Context(), c.Param("id"), candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reschedule approved", updated)
}

// RejectReschedule godoc
// @Summary      Reject a pending reschedule
// @Description  Rejecting cancels the interview and frees the booked slot.
// @Tags         interviews
// @Produce      json
// @Param        id path string true "Interview request ID"
// @Param        candidate_id query string true "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.InterviewRequest}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews/{id}/reschedule/reject [post]
// @Security     BearerAuth
func (h *InterviewHandler) RejectReschedule(c *gin.Context) {
	candidateID, err := decisionCandidate(c)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.interviewUC.RejectReschedule(c.Request.Context(), c.Param("id"), candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reschedule rejected", updated)
}

// RescheduleLink godoc
// @Summary      Approve or reject a reschedule from an email link
// @Description  The token is single-use and bound to the interview, the action and the recipient.
// @Tags         interviews
// @Produce      json
// @Param        id path string true "Interview request ID"
// @Param        token query string true "Signed link token"
// @Success      200  {object}  response.Response{data=domain.InterviewRequest}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews/{id}/reschedule/approve [get]
func (h *InterviewHandler) RescheduleLink(action string) gin.HandlerFunc {
	message := "Reschedule approved"
	if action == domain.RescheduleActionReject {
		message = "Reschedule rejected"
	}
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.Error(apperror.Unauthorized("This link is invalid or has expired"))
			return
		}

		updated, err := h.interviewUC.DecideRescheduleByLink(c.Request.Context(), c.Param("id"), action, token)
		if err != nil {
			c.Error(err)
			return
		}

		response.Success(c, http.StatusOK, message, updated)
	}
}

// History godoc
// @Summary      Status history of an interview request
// @Tags         interviews
// @Produce      json
// @Param        id path string true "Interview request ID"
// @Success      200  {object}  response.Response{data=[]domain.Transition}
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/history [get]
// @Security     BearerAuth
func (h *InterviewHandler) History(c *gin.Context) {
	history, err := h.interviewUC.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview history", history)
}

// decisionCandidate reads candidate_id from the query string or the JSON body.
func decisionCandidate(c *gin.Context) (string, error) {
	if id := c.Query("candidate_id"); id != "" {
		return id, nil
	}
	var req RescheduleDecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", err
		}
	}
	if req.CandidateID == "" {
		return "", apperror.BadRequest("candidate_id is required")
	}
	return req.CandidateID, nil
}
