package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/shashikanthshadow/talentscout/internal/ai"

	"google.golang.org/genai"
)

const (
	statePrefix     = "STATE:\n"
	oneQuestionRule = "\nAsk exactly one question at a time during data collection."
)

// buildContents assembles the request: a preface turn carrying the system
// preamble, the serialized state and the one-question rule, then the last
// window turns of history, then the current user text.
func buildContents(req *ai.Request, window int) ([]*genai.Content, error) {
	state := req.State
	if state == nil {
		state = map[string]any{}
	}

	stateJSON, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}

	preface := make([]*genai.Part, 0, 3)
	if req.SystemPreamble != "" {
		preface = append(preface, &genai.Part{Text: req.SystemPreamble})
	}
	preface = append(preface,
		&genai.Part{Text: statePrefix + string(stateJSON)},
		&genai.Part{Text: oneQuestionRule},
	)

	history := lastTurns(req.History, window)

	contents := make([]*genai.Content, 0, len(history)+2)
	contents = append(contents, &genai.Content{Role: string(genai.RoleUser), Parts: preface})

	for _, turn := range history {
		role := string(genai.RoleUser)
		if turn.Role == ai.RoleAssistant {
			role = string(genai.RoleModel)
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}

	contents = append(contents, &genai.Content{
		Role:  string(genai.RoleUser),
		Parts: []*genai.Part{{Text: req.UserText}},
	})

	return contents, nil
}

func lastTurns(history []ai.Turn, window int) []ai.Turn {
	if window <= 0 {
		return nil
	}
	if len(history) <= window {
		return history
	}
	return history[len(history)-window:]
}

// buildConfig maps params onto the generation config. No safety settings are
// set, which the API treats the same as an empty list.
func buildConfig(params ai.Params) *genai.GenerateContentConfig {
	params = params.WithDefaults()

	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(*params.Temperature)),
		TopK:             genai.Ptr(float32(*params.TopK)),
		TopP:             genai.Ptr(float32(*params.TopP)),
		MaxOutputTokens:  int32(*params.MaxOutputTokens),
		ResponseMIMEType: params.ResponseMIMEType,
	}
}
