package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/internal/profile"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/validation"
)

type profileUsecase struct {
	candidates   domain.CandidateRepository
	interviewers domain.InterviewerRepository
	notifier     domain.Notifier
	validate     *validator.Validate
	frontendURL  string
}

func NewProfileUsecase(candidates domain.CandidateRepository, interviewers domain.InterviewerRepository, notifier domain.Notifier, frontendURL string) domain.ProfileUsecase {
	if notifier == nil {
		notifier = NewNotifier(nil, nil, nil)
	}
	return &profileUsecase{
		candidates:   candidates,
		interviewers: interviewers,
		notifier:     notifier,
		validate:     validation.New(),
		frontendURL:  strings.TrimRight(frontendURL, "/"),
	}
}

func (u *profileUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	c, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}
	if c == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return c, nil
}

func (u *profileUsecase) GetInterviewer(ctx context.Context, id string) (*domain.Interviewer, error) {
	i, err := u.interviewers.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if i == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}
	return i, nil
}

func (u *profileUsecase) UpdateCandidateProfile(ctx context.Context, c *domain.Candidate) (*domain.ProfileCompletion, error) {
	if c == nil || blank(c.ID) {
		return nil, apperror.BadRequest("Candidate id is required")
	}
	if err := authorizeOwner(ctx, c.ID); err != nil {
		return nil, err
	}
	if err := u.check(c); err != nil {
		return nil, err
	}

	existing, err := u.GetCandidate(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = strings.TrimSpace(c.Name)
	existing.Email = strings.TrimSpace(c.Email)
	existing.Phone = strings.TrimSpace(c.Phone)
	existing.ProfilePhotoURL = c.ProfilePhotoURL
	existing.ResumeURL = c.ResumeURL
	existing.LinkedInURL = c.LinkedInURL
	existing.CurrentRole = strings.TrimSpace(c.CurrentRole)
	existing.YearsOfExperience = c.YearsOfExperience
	existing.Skills = c.Skills

	if err := u.candidates.UpdateProfile(ctx, existing); err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}

	completion := profile.Candidate(existing)
	if !completion.IsComplete {
		u.nudge(ctx, existing.ID, existing.Name, existing.Email, "candidates", completion)
	}
	return &completion, nil
}

func (u *profileUsecase) UpdateInterviewerProfile(ctx context.Context, i *domain.Interviewer) (*domain.ProfileCompletion, error) {
	if i == nil || blank(i.ID) {
		return nil, apperror.BadRequest("Interviewer id is required")
	}
	if err := authorizeOwner(ctx, i.ID); err != nil {
		return nil, err
	}
	if err := u.check(i); err != nil {
		return nil, err
	}

	existing, err := u.GetInterviewer(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = strings.TrimSpace(i.Name)
	existing.Email = strings.TrimSpace(i.Email)
	existing.Phone = strings.TrimSpace(i.Phone)
	existing.ProfilePhotoURL = i.ProfilePhotoURL
	existing.ProfessionalTitle = strings.TrimSpace(i.ProfessionalTitle)
	existing.Company = strings.TrimSpace(i.Company)
	existing.YearsOfExperience = i.YearsOfExperience
	existing.Skills = i.Skills
	existing.Price = strings.TrimSpace(i.Price)

	if err := u.interviewers.UpdateProfile(ctx, existing); err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}

	completion := profile.Interviewer(existing)
	if !completion.IsComplete {
		u.nudge(ctx, existing.ID, existing.Name, existing.Email, "interviewers", completion)
	}
	return &completion, nil
}

func (u *profileUsecase) GetCandidateProfileCompletion(ctx context.Context, id string) (*domain.ProfileCompletion, error) {
	c, err := u.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	completion := profile.Candidate(c)
	return &completion, nil
}

func (u *profileUsecase) GetInterviewerProfileCompletion(ctx context.Context, id string) (*domain.ProfileCompletion, error) {
	i, err := u.GetInterviewer(ctx, id)
	if err != nil {
		return nil, err
	}
	completion := profile.Interviewer(i)
	return &completion, nil
}

func (u *profileUsecase) check(v any) error {
	if err := u.validate.Struct(v); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return nil
}

func (u *profileUsecase) nudge(ctx context.Context, userID, name, email, kind string, c domain.ProfileCompletion) {
	u.notifier.Notify(ctx, domain.Notice{
		UserID:   userID,
		Email:    email,
		Subject:  "Complete your profile",
		Template: domain.TemplateProfileIncomplete,
		Data: domain.ProfileNotice{
			RecipientName:   name,
			TotalPercentage: c.TotalPercentage,
			Missing:         c.MissingSections,
			ProfileURL:      u.frontendURL + "/" + kind + "/" + userID + "/profile",
		},
	})
}

// authorizeOwner allows the profile owner and admins. A context without a
// user id is treated as an internal caller.
func authorizeOwner(ctx context.Context, ownerID string) error {
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	if userID == "" {
		return nil
	}
	if role, _ := ctx.Value(domain.KeyUserRole).(string); role == domain.RoleAdmin {
		return nil
	}
	if userID != ownerID {
		return apperror.Forbidden("You can only update your own profile")
	}
	return nil
}
