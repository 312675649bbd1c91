package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBrief() BriefRequest {
	return BriefRequest{
		Name:      "Summer Launch",
		Goal:      "Drive signups",
		Audience:  "Young professionals",
		Voice:     "Friendly",
		Messages:  "Feel good all summer",
		Platforms: []string{PlatformInstagramReels, PlatformMetaAds},
		Tone:      "Playful",
	}
}

func TestBriefRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BriefRequest)
		wantErr string
	}{
		{
			name:   "valid brief",
			mutate: func(r *BriefRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *BriefRequest) { r.Name = "" },
			wantErr: "missing campaign name",
		},
		{
			name:    "whitespace name",
			mutate:  func(r *BriefRequest) { r.Name = "   " },
			wantErr: "missing campaign name",
		},
		{
			name:    "missing goal",
			mutate:  func(r *BriefRequest) { r.Goal = "" },
			wantErr: "missing campaign goal",
		},
		{
			name:    "missing audience",
			mutate:  func(r *BriefRequest) { r.Audience = "" },
			wantErr: "missing target audience",
		},
		{
			name:    "no platforms",
			mutate:  func(r *BriefRequest) { r.Platforms = nil },
			wantErr: "no platforms selected",
		},
		{
			name:    "unknown platform",
			mutate:  func(r *BriefRequest) { r.Platforms = []string{"TikTok"} },
			wantErr: "unknown platform: TikTok",
		},
		{
			name:    "unknown tone",
			mutate:  func(r *BriefRequest) { r.Tone = "Sarcastic" },
			wantErr: "unknown tone: Sarcastic",
		},
		{
			name:    "empty tone",
			mutate:  func(r *BriefRequest) { r.Tone = "" },
			wantErr: "unknown tone: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBrief()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestBriefRequest_Normalize(t *testing.T) {
	req := BriefRequest{
		Name:     "  Summer Launch  ",
		Goal:     "\tDrive signups\n",
		Audience: " Young professionals ",
		Voice:    " Friendly ",
		Messages: " Feel good ",
		Tone:     " Playful ",
	}

	req.Normalize()

	assert.Equal(t, "Summer Launch", req.Name)
	assert.Equal(t, "Drive signups", req.Goal)
	assert.Equal(t, "Young professionals", req.Audience)
	assert.Equal(t, "Friendly", req.Voice)
	assert.Equal(t, "Feel good", req.Messages)
	assert.Equal(t, "Playful", req.Tone)
}

func TestBriefRequest_ToBrief(t *testing.T) {
	req := validBrief()
	brief := req.ToBrief()

	assert.Equal(t, req.Goal, brief.Goal)
	assert.Equal(t, req.Audience, brief.Audience)
	assert.Equal(t, req.Voice, brief.Voice)
	assert.Equal(t, req.Messages, brief.Messages)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad input")))
	assert.False(t, IsValidationError(errors.New("something else")))
	assert.False(t, IsValidationError(nil))
}

func TestFormatDisplayDate(t *testing.T) {
	date := time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "March 7, 2026", FormatDisplayDate(date))
}
