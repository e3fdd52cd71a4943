package usecase

import (
	"context"
	"errors"

	"arogyaai/internal/triage"
	"arogyaai/pkg/groq"
)

const (
	guidanceSystemPrompt = "You are a healthcare guidance assistant. " +
		"Provide only general first-aid advice. " +
		"Do not diagnose diseases. " +
		"Keep responses short and safe. Always end with: 'Seek professional medical help if symptoms worsen.'"

	guidanceTemperature = 0.2
	guidanceMaxTokens   = 300
)

// Advisory fallbacks. Guidance is advisory and must never block a reply,
// so every failure path resolves to one of these instead of an error.
const (
	advisoryNoCredential     = "Please consult a healthcare professional if symptoms persist."
	advisoryStatusFailure    = "Unable to generate AI guidance at the moment. Please try again."
	advisoryTransportFailure = "Unable to generate AI guidance at the moment."
)

func advisory(text string) triage.Guidance {
	return triage.Guidance{Text: text, Source: triage.GuidanceSourceAdvisory}
}

// generateGuidance asks the LLM for first-aid steps for the resolved issue.
// It never returns an error: missing credential, non-2xx statuses, transport
// failures, and empty responses all degrade to a fixed advisory. A single
// attempt, no retries.
func (uc *implUseCase) generateGuidance(ctx context.Context, issue, userMessage string) triage.Guidance {
	if uc.llm == nil {
		return advisory(advisoryNoCredential)
	}

	content := "Issue: " + issue
	if userMessage != "" {
		content += "\nUser details: " + userMessage
	}

	resp, err := uc.llm.ChatCompletion(ctx, &groq.Request{
		Messages: []groq.Message{
			{Role: "system", Content: guidanceSystemPrompt},
			{Role: "user", Content: content + ". Suggest basic first-aid steps."},
		},
		Temperature: guidanceTemperature,
		MaxTokens:   guidanceMaxTokens,
	})
	if err != nil {
		var apiErr *groq.APIError
		if errors.As(err, &apiErr) {
			uc.l.Warnf(ctx, "uc.generateGuidance: API status %d: %s", apiErr.StatusCode, apiErr.Message)
			return advisory(advisoryStatusFailure)
		}
		uc.l.Warnf(ctx, "uc.generateGuidance: %v", err)
		return advisory(advisoryTransportFailure)
	}

	if len(resp.Choices) == 0 {
		uc.l.Warnf(ctx, "uc.generateGuidance: empty choices in response")
		return advisory(advisoryTransportFailure)
	}

	// Returned verbatim: the closing disclaimer is mandated by the system
	// prompt, not verified here.
	return triage.Guidance{
		Text:   resp.Choices[0].Message.Content,
		Source: triage.GuidanceSourceModel,
	}
}
