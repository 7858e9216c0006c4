package domain

import "errors"

var ErrActivityNotFound = errors.New("activity not found")
var ErrAlreadyJoined = errors.New("already joined this activity")
var ErrValidation = errors.New("missing required fields")

// Activity is the core aggregate root: a catalog entry students can join.
type Activity struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Participants []string `json:"participants"`
}

// HasParticipant reports whether username is already in the participant set.
func (a *Activity) HasParticipant(username string) bool {
	for _, p := range a.Participants {
		if p == username {
			return true
		}
	}
	return false
}

// ActivityPatch carries a partial update. Empty fields are no-ops, not
// explicit clears.
type ActivityPatch struct {
	Title       string
	Description string
	Date        string
}

// Apply copies the non-empty patch fields onto the activity.
func (p ActivityPatch) Apply(a *Activity) {
	if p.Title != "" {
		a.Title = p.Title
	}
	if p.Description != "" {
		a.Description = p.Description
	}
	if p.Date != "" {
		a.Date = p.Date
	}
}
