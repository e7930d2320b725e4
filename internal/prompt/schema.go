package prompt

import "google.golang.org/genai"

// The schemas below declare the exact JSON shape each kind's reply must
// carry. The gateway forwards them to the model as structured-output config
// and verifies the parsed reply against the Required lists.

func stringArray(description string) *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString, Description: description},
	}
}

func generateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"descriptions": stringArray("A complete and well-written product description in the requested language."),
		},
		Required: []string{"descriptions"},
	}
}

func analyzeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"analysis": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"strengths":     stringArray(""),
					"weaknesses":    stringArray(""),
					"opportunities": stringArray(""),
				},
				Required: []string{"strengths", "weaknesses", "opportunities"},
			},
			"descriptions": stringArray(""),
		},
		Required: []string{"analysis", "descriptions"},
	}
}

func assetsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"seoTitle":           {Type: genai.TypeString},
			"seoMetaDescription": {Type: genai.TypeString},
			"socialPosts": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"facebook":  {Type: genai.TypeString},
					"instagram": {Type: genai.TypeString},
					"twitter":   {Type: genai.TypeString},
				},
				Required: []string{"facebook", "instagram", "twitter"},
			},
			"adCopy": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"google": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"headlines":    stringArray(""),
							"descriptions": stringArray(""),
						},
						Required: []string{"headlines", "descriptions"},
					},
					"facebook": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"primaryText": {Type: genai.TypeString},
							"headline":    {Type: genai.TypeString},
						},
						Required: []string{"primaryText", "headline"},
					},
				},
				Required: []string{"google", "facebook"},
			},
		},
		Required: []string{"seoTitle", "seoMetaDescription", "socialPosts", "adCopy"},
	}
}

func faqSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"faqs": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question": {Type: genai.TypeString},
						"answer":   {Type: genai.TypeString},
					},
					Required: []string{"question", "answer"},
				},
			},
		},
		Required: []string{"faqs"},
	}
}

func videoScriptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":          {Type: genai.TypeString},
			"targetDuration": {Type: genai.TypeString},
			"scenes": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"visual":    {Type: genai.TypeString, Description: "A description of the visuals for this scene."},
						"narration": {Type: genai.TypeString, Description: "The voiceover text for this scene."},
					},
					Required: []string{"visual", "narration"},
				},
			},
		},
		Required: []string{"title", "targetDuration", "scenes"},
	}
}

func audioAdSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":          {Type: genai.TypeString},
			"targetDuration": {Type: genai.TypeString},
			"hook":           {Type: genai.TypeString},
			"body":           {Type: genai.TypeString},
			"callToAction":   {Type: genai.TypeString},
			"sfxSuggestions": stringArray(""),
		},
		Required: []string{"title", "targetDuration", "hook", "body", "callToAction", "sfxSuggestions"},
	}
}
