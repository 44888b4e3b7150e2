package dto

import (
	"time"

	"github.com/openhire/jobboard-service/internal/domain"
)

// UserView is the public shape of an account. Internal numeric ids and
// password hashes never leave the service.
type UserView struct {
	ExternalID string    `json:"externalId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ExternalID: u.ExternalID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func NewUserViews(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, NewUserView(u))
	}
	return views
}

// JobView is the public shape of a job posting.
type JobView struct {
	ExternalID string    `json:"externalId"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewJobView(j domain.Job) JobView {
	return JobView{
		ExternalID: j.ExternalID,
		Name:       j.Name,
		Status:     string(j.Status),
		CreatedAt:  j.CreatedAt,
		UpdatedAt:  j.UpdatedAt,
	}
}

func NewJobViews(jobs []domain.Job) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, NewJobView(j))
	}
	return views
}

// JobListData is the paginated job listing payload.
type JobListData struct {
	Count    int       `json:"count"`
	PageSize int       `json:"pageSize"`
	Data     []JobView `json:"data"`
}

// ApplicantListData is one page of applicants for a job.
type ApplicantListData struct {
	PageSize int        `json:"pageSize"`
	Data     []UserView `json:"data"`
}

// TokenData is returned by sign-in.
type TokenData struct {
	Token string `json:"token"`
}
