package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/service"
)

func TestContentPrompt(t *testing.T) {
	req := models.BriefRequest{
		Name:      "Summer Launch",
		Goal:      "Drive signups",
		Audience:  "Young professionals",
		Voice:     "Friendly",
		Messages:  "Feel good all summer",
		Platforms: []string{models.PlatformInstagramReels, models.PlatformMetaAds},
		Tone:      "Playful",
	}

	want := `Campaign Brief:
Campaign Name: Summer Launch
Campaign Goal: Drive signups
Target Audience: Young professionals
Brand Voice: Friendly
Key Messages: Feel good all summer
Platforms: Instagram Reels, Meta Ads
Tone: Playful

Generate comprehensive marketing content for all selected platforms including reels script, meta ads copy, and landing page draft.`

	assert.Equal(t, want, service.ContentPrompt(req))
}

func TestVisualsPrompt_WithHook(t *testing.T) {
	campaign := models.Campaign{
		Name: "Summer Launch",
		Brief: models.Brief{
			Goal:     "Drive signups",
			Audience: "Young professionals",
			Voice:    "Friendly",
		},
		Content: &models.CampaignContent{
			ReelsScript: &models.ReelsScript{Hook: "Stop scrolling"},
		},
	}

	want := `Generate visual concepts for this campaign:
Campaign: Summer Launch
Goal: Drive signups
Audience: Young professionals
Brand Voice: Friendly
Reels Script Hook: Stop scrolling

Create mood board concepts, thumbnail ideas, and scene-by-scene visual direction.`

	assert.Equal(t, want, service.VisualsPrompt(campaign))
}

func TestVisualsPrompt_WithoutHook(t *testing.T) {
	campaign := models.Campaign{
		Name: "Summer Launch",
		Brief: models.Brief{
			Goal:     "Drive signups",
			Audience: "Young professionals",
			Voice:    "Friendly",
		},
	}

	want := `Generate visual concepts for this campaign:
Campaign: Summer Launch
Goal: Drive signups
Audience: Young professionals
Brand Voice: Friendly

Create mood board concepts, thumbnail ideas, and scene-by-scene visual direction.`

	assert.Equal(t, want, service.VisualsPrompt(campaign))
}
