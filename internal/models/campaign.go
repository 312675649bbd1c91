package models

import (
	"time"
)

// Campaign is a single marketing campaign: the brief the user supplied,
// plus whatever the generation agents produced for it.
type Campaign struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Date      string           `json:"date"`
	Platforms []string         `json:"platforms"`
	Status    CampaignStatus   `json:"status"`
	Tone      string           `json:"tone"`
	Brief     Brief            `json:"brief"`
	Content   *CampaignContent `json:"content,omitempty"`
	Visuals   *CampaignVisuals `json:"visuals,omitempty"`
}

// Brief holds the four free-text fields supplied by the user.
// Immutable once the campaign is created.
type Brief struct {
	Goal     string `json:"goal"`
	Audience string `json:"audience"`
	Voice    string `json:"voice"`
	Messages string `json:"messages"`
}

// CampaignStatus represents the status of a campaign
type CampaignStatus string

// enum values for CampaignStatus
const (
	StatusDraft    CampaignStatus = "draft"
	StatusComplete CampaignStatus = "complete"
)

// IsComplete returns true if content generation succeeded and was parsed
func (c *Campaign) IsComplete() bool {
	return c.Status == StatusComplete
}

// Platform options a campaign can target.
const (
	PlatformInstagramReels = "Instagram Reels"
	PlatformMetaAds        = "Meta Ads"
	PlatformLandingPage    = "Landing Page"
)

// PlatformOptions lists every platform a brief may select.
var PlatformOptions = []string{PlatformInstagramReels, PlatformMetaAds, PlatformLandingPage}

// ToneOptions lists every tone a brief may select.
var ToneOptions = []string{"Professional", "Playful", "Bold", "Empathetic", "Urgent"}

// DisplayDateLayout is the layout used for the display-formatted creation date.
const DisplayDateLayout = "January 2, 2006"

// FormatDisplayDate formats a creation timestamp for display.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}
