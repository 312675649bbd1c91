package models

// CampaignContent holds the generated artifacts for a campaign. The agent's
// output shape is not contractually guaranteed, so every field here is
// best-effort: sub-objects are nil when the agent omitted or mangled them.
type CampaignContent struct {
	CampaignSummary string       `json:"campaign_summary"`
	ReelsScript     *ReelsScript `json:"reels_script"`
	MetaAds         *MetaAds     `json:"meta_ads"`
	LandingPage     *LandingPage `json:"landing_page"`
}

// ReelsScript is a short-form video script.
type ReelsScript struct {
	Hook            string       `json:"hook,omitempty"`
	Scenes          []ReelsScene `json:"scenes,omitempty"`
	CTA             string       `json:"cta,omitempty"`
	TotalDuration   string       `json:"total_duration,omitempty"`
	MusicSuggestion string       `json:"music_suggestion,omitempty"`
	PlatformTips    []string     `json:"platform_tips,omitempty"`
}

// ReelsScene is one scene of a reels script.
type ReelsScene struct {
	SceneNumber     int    `json:"scene_number,omitempty"`
	VisualDirection string `json:"visual_direction,omitempty"`
	OnScreenText    string `json:"on_screen_text,omitempty"`
	Voiceover       string `json:"voiceover,omitempty"`
	DurationSeconds string `json:"duration_seconds,omitempty"`
}

// MetaAds is the generated ad copy, one entry per placement.
type MetaAds struct {
	Placements []AdPlacement `json:"placements,omitempty"`
}

// AdPlacement is ad copy for a single Meta placement (Feed, Stories, Reels).
type AdPlacement struct {
	PlacementType       string   `json:"placement_type,omitempty"`
	PrimaryTextVariants []string `json:"primary_text_variants,omitempty"`
	HeadlineVariants    []string `json:"headline_variants,omitempty"`
	Description         string   `json:"description,omitempty"`
	CTAButton           string   `json:"cta_button,omitempty"`
	OptimizationNotes   string   `json:"optimization_notes,omitempty"`
}

// LandingPage is the generated landing-page copy.
type LandingPage struct {
	Headline               string       `json:"headline,omitempty"`
	Subheadline            string       `json:"subheadline,omitempty"`
	HeroCTA                string       `json:"hero_cta,omitempty"`
	HeroDescription        string       `json:"hero_description,omitempty"`
	ValuePropositions      []TitledItem `json:"value_propositions,omitempty"`
	SocialProofSuggestions []string     `json:"social_proof_suggestions,omitempty"`
	FeatureHighlights      []TitledItem `json:"feature_highlights,omitempty"`
	SecondaryCTA           string       `json:"secondary_cta,omitempty"`
	FAQs                   []FAQ        `json:"faqs,omitempty"`
	FooterCTA              string       `json:"footer_cta,omitempty"`
	FooterCopy             string       `json:"footer_copy,omitempty"`
}

// TitledItem is a titled blurb (value propositions, feature highlights).
type TitledItem struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FAQ is a single landing-page question/answer pair.
type FAQ struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// CampaignVisuals is the result of the second-phase visual generation:
// the normalized concept payload plus any rendered image artifacts.
type CampaignVisuals struct {
	Data   *VisualConcepts `json:"data"`
	Images []VisualImage   `json:"images"`
}

// VisualConcepts is the visual agent's concept payload.
type VisualConcepts struct {
	MoodBoardDescription string        `json:"mood_board_description,omitempty"`
	ThumbnailConcept     string        `json:"thumbnail_concept,omitempty"`
	VisualStyle          string        `json:"visual_style,omitempty"`
	ColorPalette         []string      `json:"color_palette,omitempty"`
	SceneVisuals         []SceneVisual `json:"scene_visuals,omitempty"`
}

// SceneVisual is per-scene visual direction.
type SceneVisual struct {
	SceneNumber       int    `json:"scene_number,omitempty"`
	VisualDescription string `json:"visual_description,omitempty"`
	CompositionNotes  string `json:"composition_notes,omitempty"`
}

// VisualImage is a rendered image artifact. Fields default to empty strings
// when the agent platform omits them.
type VisualImage struct {
	FileURL    string `json:"file_url"`
	Name       string `json:"name"`
	FormatType string `json:"format_type"`
}
