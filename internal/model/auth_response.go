package model

// RecruiterResponse struct holds the response data for recruiter login or registration
type RecruiterResponse struct {
	User        RecruiterProfile `json:"user"`
	AccessToken string           `json:"access_token"`
}

// JobSeekerResponse struct holds the response data for job seeker login or registration
type JobSeekerResponse struct {
	User        JobSeekerProfile `json:"user"`
	AccessToken string           `json:"access_token"`
}

// AdminResponse struct holds the response data for admin login
type AdminResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
