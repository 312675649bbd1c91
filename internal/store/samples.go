package store

import (
	"time"

	"github.com/marketflowhq/marketflow/internal/models"
)

// Sample campaign ids. These never enter the persisted collection.
const (
	SampleCampaignID1 = "sample-1"
	SampleCampaignID2 = "sample-2"
)

// SampleCampaigns returns the fixed demonstration dataset. A fresh copy is
// built on every call so callers can never mutate the samples through the
// merged view.
func SampleCampaigns() []models.Campaign {
	date := models.FormatDisplayDate(time.Now())
	return []models.Campaign{
		{
			ID:        SampleCampaignID1,
			Name:      "Summer Wellness Launch",
			Date:      date,
			Platforms: []string{models.PlatformInstagramReels, models.PlatformMetaAds, models.PlatformLandingPage},
			Status:    models.StatusComplete,
			Tone:      "Playful",
			Brief: models.Brief{
				Goal:     "Drive awareness for our new organic wellness supplement line and generate 500 sign-ups for early access.",
				Audience: "Health-conscious millennials, 25-35, urban professionals interested in natural wellness",
				Voice:    "Approachable and energetic, uses conversational language with a confident undertone",
				Messages: "- 100% organic, lab-tested ingredients\n- Feel the difference in 7 days\n- Free shipping on first order",
			},
			Content: &models.CampaignContent{
				CampaignSummary: "A multi-platform campaign targeting health-conscious millennials through engaging short-form video content, targeted Meta ads across Feed, Stories, and Reels placements, and a high-converting landing page designed to capture early access sign-ups for the organic wellness supplement line.",
				ReelsScript: &models.ReelsScript{
					Hook: "What if feeling amazing was as simple as one scoop a day?",
					Scenes: []models.ReelsScene{
						{
							SceneNumber:     1,
							VisualDirection: "Close-up of powder being scooped with morning light streaming in",
							OnScreenText:    "Your morning just got an upgrade",
							Voiceover:       "Most supplements are full of artificial junk.",
							DurationSeconds: "3",
						},
						{
							SceneNumber:     2,
							VisualDirection: "Lifestyle shot of young professional making a smoothie in a modern kitchen",
							OnScreenText:    "100% Organic. Lab-Tested.",
							Voiceover:       "Ours is 100 percent organic and lab-tested for purity.",
							DurationSeconds: "4",
						},
						{
							SceneNumber:     3,
							VisualDirection: "Split screen: before (tired at desk) vs after (energized workout)",
							OnScreenText:    "Feel the difference in 7 days",
							Voiceover:       "Feel the difference in just seven days or your money back.",
							DurationSeconds: "4",
						},
					},
					CTA:             "Tap the link to claim your free shipping on your first order!",
					TotalDuration:   "15 seconds",
					MusicSuggestion: "Upbeat lo-fi track with positive energy, 120 BPM",
					PlatformTips: []string{
						"Use trending audio for first 2 seconds to boost discovery",
						"Add captions - 85% of users watch without sound",
						"Post between 7-9 AM for wellness audience",
					},
				},
				MetaAds: &models.MetaAds{
					Placements: []models.AdPlacement{
						{
							PlacementType: "Feed",
							PrimaryTextVariants: []string{
								"Tired of supplements that don't deliver? Our organic wellness blend is lab-tested and loved by thousands. Try it risk-free today.",
								"One scoop. Seven days. A whole new you. Discover the organic supplement that's changing the wellness game.",
							},
							HeadlineVariants:  []string{"Feel Amazing in 7 Days", "Your Body Deserves Better"},
							Description:       "Lab-tested organic wellness supplements with free shipping on your first order. 30-day money-back guarantee.",
							CTAButton:         "Sign Up",
							OptimizationNotes: "Test carousel format with ingredient close-ups. Target interests: organic food, yoga, mindfulness apps.",
						},
						{
							PlacementType:       "Stories",
							PrimaryTextVariants: []string{"Swipe up to feel the difference", "Organic wellness made simple"},
							HeadlineVariants:    []string{"Free Shipping Today", "Try Risk-Free"},
							Description:         "Quick-hit wellness content optimized for Stories placement with urgency-driven CTAs.",
							CTAButton:           "Learn More",
							OptimizationNotes:   "Use video format with first 3 seconds showing product. Add poll sticker for engagement.",
						},
					},
				},
				LandingPage: &models.LandingPage{
					Headline:        "Feel the Difference in 7 Days",
					Subheadline:     "Organic wellness supplements that actually work - lab-tested, doctor-recommended, and loved by thousands.",
					HeroCTA:         "Start Your Free Trial",
					HeroDescription: "Join 10,000+ wellness enthusiasts who transformed their daily routine with our premium organic supplement blend. Free shipping on your first order.",
					ValuePropositions: []models.TitledItem{
						{Title: "100% Organic", Description: "Every ingredient is sustainably sourced and certified organic. No fillers, no artificial anything."},
						{Title: "Lab Tested", Description: "Third-party tested for purity and potency. We publish every batch result for full transparency."},
						{Title: "7-Day Results", Description: "Most customers report noticeable improvements in energy and focus within the first week."},
					},
					SocialProofSuggestions: []string{
						"10,000+ happy customers",
						"4.9 star average rating",
						"Featured in Health Magazine",
						"Recommended by 500+ wellness practitioners",
					},
					FeatureHighlights: []models.TitledItem{
						{Title: "Premium Ingredients", Description: "Sourced from certified organic farms worldwide"},
						{Title: "Fast Absorption", Description: "Bioavailable formula for maximum nutrient uptake"},
						{Title: "No Side Effects", Description: "Gentle on your stomach, powerful for your body"},
					},
					SecondaryCTA: "See the Science Behind It",
					FAQs: []models.FAQ{
						{Question: "How long until I see results?", Answer: "Most customers notice improvements in energy and focus within 7 days of consistent use."},
						{Question: "Is it safe to take with other supplements?", Answer: "Yes! Our blend is designed to complement your existing routine. Consult your doctor if you have specific concerns."},
						{Question: "What is your return policy?", Answer: "We offer a 30-day money-back guarantee. If you are not completely satisfied, return it for a full refund."},
					},
					FooterCTA:  "Start Your Wellness Journey Today",
					FooterCopy: "Join thousands who chose a healthier path. Free shipping, 30-day guarantee, no questions asked.",
				},
			},
		},
		{
			ID:        SampleCampaignID2,
			Name:      "Tech Product Pre-Launch",
			Date:      date,
			Platforms: []string{models.PlatformMetaAds, models.PlatformLandingPage},
			Status:    models.StatusComplete,
			Tone:      "Bold",
			Brief: models.Brief{
				Goal:     "Build hype for upcoming smart home device and collect 1,000 waitlist sign-ups before launch.",
				Audience: "Tech-savvy early adopters, 28-45, interested in smart home technology",
				Voice:    "Confident, innovative, slightly provocative",
				Messages: "- First AI-powered home hub\n- Works with 500+ devices\n- Pre-order pricing: 40% off",
			},
			Content: &models.CampaignContent{
				CampaignSummary: "A bold pre-launch campaign targeting tech enthusiasts through Meta Ads and a high-conversion landing page, emphasizing the innovative AI-powered features and exclusive pre-order pricing to drive waitlist sign-ups.",
				ReelsScript:     nil,
				MetaAds: &models.MetaAds{
					Placements: []models.AdPlacement{
						{
							PlacementType: "Feed",
							PrimaryTextVariants: []string{
								"Your smart home is about to get a whole lot smarter. The first AI-powered hub that actually learns how you live.",
								"Forget everything you know about smart home devices. This changes everything.",
							},
							HeadlineVariants:  []string{"The Future of Smart Home", "AI Meets Home Automation"},
							Description:       "Pre-order now at 40% off. Works with 500+ devices. Ships Q2 2025.",
							CTAButton:         "Pre-Order Now",
							OptimizationNotes: "Use tech-focused imagery. Target audiences interested in IoT, smart home, AI assistants.",
						},
					},
				},
				LandingPage: &models.LandingPage{
					Headline:        "Your Home, Reimagined by AI",
					Subheadline:     "The first truly intelligent home hub that learns, adapts, and evolves with your lifestyle.",
					HeroCTA:         "Join the Waitlist",
					HeroDescription: "Be among the first 1,000 to experience the future of smart living. Exclusive pre-order pricing available for waitlist members only.",
					ValuePropositions: []models.TitledItem{
						{Title: "AI-Powered Intelligence", Description: "Learns your routines and preferences automatically. No complex setup required."},
						{Title: "Universal Compatibility", Description: "Works seamlessly with 500+ smart home devices and platforms."},
					},
					SocialProofSuggestions: []string{"Featured at CES 2025", "Winner of Innovation Award"},
					FeatureHighlights: []models.TitledItem{
						{Title: "Voice Control", Description: "Natural language understanding that goes beyond simple commands"},
						{Title: "Energy Optimization", Description: "AI-driven energy management that saves you up to 30% on utilities"},
					},
					SecondaryCTA: "Watch the Demo",
					FAQs: []models.FAQ{
						{Question: "When does it ship?", Answer: "Expected shipping date is Q2 2025 for pre-order customers."},
						{Question: "What devices are compatible?", Answer: "We support 500+ devices across all major platforms including Zigbee, Z-Wave, Wi-Fi, and Matter."},
					},
					FooterCTA:  "Reserve Yours at 40% Off",
					FooterCopy: "Limited pre-order pricing. Join the smart home revolution.",
				},
			},
		},
	}
}
