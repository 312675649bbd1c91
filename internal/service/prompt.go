package service

import (
	"fmt"
	"strings"

	"github.com/marketflowhq/marketflow/internal/models"
)

// ContentPrompt renders a brief into the deterministic instruction sent to
// the content agent. Field ordering is fixed.
func ContentPrompt(req models.BriefRequest) string {
	return fmt.Sprintf(`Campaign Brief:
Campaign Name: %s
Campaign Goal: %s
Target Audience: %s
Brand Voice: %s
Key Messages: %s
Platforms: %s
Tone: %s

Generate comprehensive marketing content for all selected platforms including reels script, meta ads copy, and landing page draft.`,
		req.Name, req.Goal, req.Audience, req.Voice, req.Messages,
		strings.Join(req.Platforms, ", "), req.Tone)
}

// VisualsPrompt renders the instruction for the visual agent. The reels hook
// line is included only when the first-phase content carries one.
func VisualsPrompt(c models.Campaign) string {
	hookLine := ""
	if c.Content != nil && c.Content.ReelsScript != nil && c.Content.ReelsScript.Hook != "" {
		hookLine = fmt.Sprintf("Reels Script Hook: %s\n", c.Content.ReelsScript.Hook)
	}
	return fmt.Sprintf(`Generate visual concepts for this campaign:
Campaign: %s
Goal: %s
Audience: %s
Brand Voice: %s
%s
Create mood board concepts, thumbnail ideas, and scene-by-scene visual direction.`,
		c.Name, c.Brief.Goal, c.Brief.Audience, c.Brief.Voice, hookLine)
}
