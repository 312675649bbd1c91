package navigation

import (
	"sync"
)

// Screen identifies a UI screen the client should be showing.
type Screen string

// enum values for Screen
const (
	ScreenDashboard     Screen = "dashboard"
	ScreenContentReview Screen = "content-review"
)

// Navigator tracks the current screen and the campaign being viewed. It is
// a thin collaborator of the orchestrator: screen transitions follow
// orchestrator outcomes, never the other way around.
type Navigator struct {
	mu               sync.Mutex
	screen           Screen
	activeCampaignID string
}

// New creates a navigator starting on the dashboard.
func New() *Navigator {
	return &Navigator{screen: ScreenDashboard}
}

// ShowCampaign switches to the content-review screen for the given campaign.
func (n *Navigator) ShowCampaign(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.screen = ScreenContentReview
	n.activeCampaignID = id
}

// Reset returns to the dashboard and clears the active campaign. Used when
// the currently-viewed campaign is deleted.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.screen = ScreenDashboard
	n.activeCampaignID = ""
}

// Current returns the current screen and active campaign id.
func (n *Navigator) Current() (Screen, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.screen, n.activeCampaignID
}
