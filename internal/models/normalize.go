package models

import (
	"encoding/json"
	"strconv"
)

// NormalizePayload extracts the usable JSON document from a raw agent
// envelope. It tolerates string-encoded payloads and one level of
// double-wrapping, and returns nil on every unrecoverable shape instead of
// erroring: an unparseable response degrades the campaign to a draft, it
// never fails the operation.
func NormalizePayload(env *AgentEnvelope) map[string]any {
	if env == nil || !env.Success {
		return nil
	}
	if env.Response == nil || len(env.Response.Result) == 0 {
		return nil
	}

	var payload any
	if err := json.Unmarshal(env.Response.Result, &payload); err != nil {
		return nil
	}

	// Agents sometimes return the JSON document itself as a string.
	if s, ok := payload.(string); ok {
		if err := json.Unmarshal([]byte(s), &payload); err != nil {
			return nil
		}
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}

	// Agents are observed to sometimes double-wrap the document in another
	// result object; unwrap exactly one extra level.
	if inner, ok := obj["result"].(map[string]any); ok {
		obj = inner
	}

	return obj
}

// BuildContent coerces a normalized payload into the typed content model.
// A nil payload yields nil content; missing sub-documents yield nil fields;
// the summary defaults to the empty string.
func BuildContent(payload map[string]any) *CampaignContent {
	if payload == nil {
		return nil
	}
	return &CampaignContent{
		CampaignSummary: asString(payload["campaign_summary"]),
		ReelsScript:     buildReelsScript(payload["reels_script"]),
		MetaAds:         buildMetaAds(payload["meta_ads"]),
		LandingPage:     buildLandingPage(payload["landing_page"]),
	}
}

// BuildVisualConcepts coerces a normalized visual payload. Nil in, nil out.
func BuildVisualConcepts(payload map[string]any) *VisualConcepts {
	if payload == nil {
		return nil
	}
	vc := &VisualConcepts{
		MoodBoardDescription: asString(payload["mood_board_description"]),
		ThumbnailConcept:     asString(payload["thumbnail_concept"]),
		VisualStyle:          asString(payload["visual_style"]),
		ColorPalette:         asStringSlice(payload["color_palette"]),
	}
	for _, obj := range asObjectSlice(payload["scene_visuals"]) {
		vc.SceneVisuals = append(vc.SceneVisuals, SceneVisual{
			SceneNumber:       asInt(obj["scene_number"]),
			VisualDescription: asString(obj["visual_description"]),
			CompositionNotes:  asString(obj["composition_notes"]),
		})
	}
	return vc
}

func buildReelsScript(v any) *ReelsScript {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	rs := &ReelsScript{
		Hook:            asString(obj["hook"]),
		CTA:             asString(obj["cta"]),
		TotalDuration:   asString(obj["total_duration"]),
		MusicSuggestion: asString(obj["music_suggestion"]),
		PlatformTips:    asStringSlice(obj["platform_tips"]),
	}
	for _, scene := range asObjectSlice(obj["scenes"]) {
		rs.Scenes = append(rs.Scenes, ReelsScene{
			SceneNumber:     asInt(scene["scene_number"]),
			VisualDirection: asString(scene["visual_direction"]),
			OnScreenText:    asString(scene["on_screen_text"]),
			Voiceover:       asString(scene["voiceover"]),
			DurationSeconds: asString(scene["duration_seconds"]),
		})
	}
	return rs
}

func buildMetaAds(v any) *MetaAds {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	ads := &MetaAds{}
	for _, p := range asObjectSlice(obj["placements"]) {
		ads.Placements = append(ads.Placements, AdPlacement{
			PlacementType:       asString(p["placement_type"]),
			PrimaryTextVariants: asStringSlice(p["primary_text_variants"]),
			HeadlineVariants:    asStringSlice(p["headline_variants"]),
			Description:         asString(p["description"]),
			CTAButton:           asString(p["cta_button"]),
			OptimizationNotes:   asString(p["optimization_notes"]),
		})
	}
	return ads
}

func buildLandingPage(v any) *LandingPage {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	lp := &LandingPage{
		Headline:               asString(obj["headline"]),
		Subheadline:            asString(obj["subheadline"]),
		HeroCTA:                asString(obj["hero_cta"]),
		HeroDescription:        asString(obj["hero_description"]),
		SocialProofSuggestions: asStringSlice(obj["social_proof_suggestions"]),
		SecondaryCTA:           asString(obj["secondary_cta"]),
		FooterCTA:              asString(obj["footer_cta"]),
		FooterCopy:             asString(obj["footer_copy"]),
	}
	for _, vp := range asObjectSlice(obj["value_propositions"]) {
		lp.ValuePropositions = append(lp.ValuePropositions, titledItem(vp))
	}
	for _, fh := range asObjectSlice(obj["feature_highlights"]) {
		lp.FeatureHighlights = append(lp.FeatureHighlights, titledItem(fh))
	}
	for _, faq := range asObjectSlice(obj["faqs"]) {
		lp.FAQs = append(lp.FAQs, FAQ{
			Question: asString(faq["question"]),
			Answer:   asString(faq["answer"]),
		})
	}
	return lp
}

func titledItem(obj map[string]any) TitledItem {
	return TitledItem{
		Title:       asString(obj["title"]),
		Description: asString(obj["description"]),
	}
}

// Coercion helpers. Agents mix up strings and numbers freely, so scalar
// coercion accepts both.

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return 0
}

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

func asObjectSlice(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var objs []map[string]any
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}

func asStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		out = append(out, asString(item))
	}
	return out
}
