package message

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Nirvanjha2004/outflo/internal/config"
)

// ProfileInput is the profile a personalized message is written for.
type ProfileInput struct {
	Name     string `json:"name"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// MissingFields returns the required fields absent from the profile.
func (p ProfileInput) MissingFields() []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.JobTitle == "" {
		missing = append(missing, "job_title")
	}
	if p.Company == "" {
		missing = append(missing, "company")
	}
	return missing
}

// Generator produces personalized outreach messages via the Hugging Face
// text-generation inference API, with canned templates as a fallback.
type Generator struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		client: resty.New().
			SetBaseURL("https://api-inference.huggingface.co").
			SetTimeout(30 * time.Second),
		apiKey: cfg.HuggingFaceAPIKey,
		model:  cfg.HuggingFaceModel,
	}
}

// Generate returns an outreach message for the profile. It never fails:
// when the inference API is unavailable, misconfigured, or returns a
// too-short completion, a fallback template is used instead.
func (g *Generator) Generate(profile ProfileInput) string {
	text, err := g.generate(profile)
	if err != nil {
		log.Printf("Error generating message, using fallback: %v", err)
		return fallbackMessage(profile)
	}
	return text
}

type textGenerationResult struct {
	GeneratedText string `json:"generated_text"`
}

func (g *Generator) generate(profile ProfileInput) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("Hugging Face API key not configured")
	}

	prompt := prompts(profile)[rand.Intn(len(prompts(profile)))]

	var results []textGenerationResult
	resp, err := g.client.R().
		SetHeader("Authorization", "Bearer "+g.apiKey).
		SetBody(map[string]interface{}{
			"inputs": prompt,
			"parameters": map[string]interface{}{
				"max_length":  200,
				"temperature": 0.8,
				"top_p":       0.9,
				"do_sample":   true,
			},
		}).
		SetResult(&results).
		Post("/models/" + g.model)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("inference API returned %s", resp.Status())
	}
	if len(results) == 0 || len(results[0].GeneratedText) < 50 {
		return "", errors.New("generated message too short or empty")
	}

	return results[0].GeneratedText, nil
}

func prompts(p ProfileInput) []string {
	location := p.Location
	if location == "" {
		location = "their area"
	}
	summary := p.Summary
	if summary == "" {
		summary = "their professional experience"
	}

	return []string{
		fmt.Sprintf("Write a personalized LinkedIn outreach message to %s, a %s at %s located in %s. Mention how Outflo's automation tools can help with their outreach campaigns. Make it conversational and reference their background: %s.",
			p.Name, p.JobTitle, p.Company, location, summary),
		fmt.Sprintf("Craft a unique LinkedIn message for %s who works as %s at %s. The message should be warm, professional, and explain how Outflo can increase their sales meetings through automated outreach. Include something personalized based on: %s.",
			p.Name, p.JobTitle, p.Company, summary),
		fmt.Sprintf("Create a brief but compelling LinkedIn outreach message to %s (%s at %s). Focus on how Outflo's platform could benefit someone in their position by streamlining lead generation and follow-ups.",
			p.Name, p.JobTitle, p.Company),
	}
}

func fallbackMessage(p ProfileInput) string {
	templates := []string{
		fmt.Sprintf("Hi %s! I noticed your work as a %s at %s. Outflo's automation tools could help streamline your lead generation - would you be open to a quick chat?",
			p.Name, p.JobTitle, p.Company),
		fmt.Sprintf("Hello %s, I came across your profile and was impressed by your role at %s. I think Outflo's outreach automation could help you increase your sales meetings. Would you be interested in learning more?",
			p.Name, p.Company),
		fmt.Sprintf("%s, I see you're making an impact as a %s. Outflo has helped similar professionals boost their outreach efficiency by 40%%. Would you like to see how it works?",
			p.Name, p.JobTitle),
	}
	return templates[rand.Intn(len(templates))]
}
