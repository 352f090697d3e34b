package model

import "time"

type AuthenticationRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	UserType string `json:"UserType"`
}

type AuthenticationResponse struct {
	AccessToken string `json:"accessToken"`
}

// SubmissionResult is one element of a successful batch-submission
// response.
type SubmissionResult struct {
	SubmissionID   string
	Protocol       string
	SubmissionDate time.Time
}
