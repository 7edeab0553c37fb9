package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ParserService turns raw HTML scraped by the browser extension from a
// third-party profile page into structured candidate data via Gemini.
type ParserService struct {
	Client llms.Model
}

// NewParserService initializes the Gemini client from GEMINI_API_KEY.
func NewParserService() *ParserService {
	ctx := context.Background()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("CRITICAL ERROR: GEMINI_API_KEY is empty. Did you load the .env file?")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	return &ParserService{Client: llm}
}

const profileExtractionPrompt = `
You are an expert Candidate Profile Extraction Agent. Your task is to analyze the provided raw HTML/Text from a professional-network or code-hosting profile page and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the person's professional details.
2. **Ignore** navigation menus, footers, "people also viewed" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "full_name": "The person's name (e.g., Jane Doe)",
    "headline": "Their professional headline or bio line (e.g., Senior Backend Engineer at Acme)",
    "location": "Their stated location or null",
    "email": "Public email address if shown, otherwise null",
    "skills": ["Array", "of", "skills/technologies", "mentioned", "e.g., Go, React, AWS"]
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractCandidateProfile takes raw profile HTML and returns the structured
// JSON string produced by the model.
func (s *ParserService) ExtractCandidateProfile(ctx context.Context, rawHTML string) (string, error) {
	if len(rawHTML) > 20000 {
		rawHTML = rawHTML[:20000]
	}
	prompt := fmt.Sprintf(profileExtractionPrompt, rawHTML)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return resp, nil
}
