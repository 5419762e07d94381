package ai

import (
	"context"
)

// Role is the author of a conversation turn.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Turn is a single message of the conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Params controls generation. A nil field means the default from DefaultParams;
// a non-nil zero is sent as zero.
type Params struct {
	Temperature      *float64 `mapstructure:"temperature" validate:"omitempty,gte=0,lte=2"`
	TopK             *int     `mapstructure:"top-k" validate:"omitempty,gte=1"`
	TopP             *float64 `mapstructure:"top-p" validate:"omitempty,gte=0,lte=1"`
	MaxOutputTokens  *int     `mapstructure:"max-output-tokens" validate:"omitempty,gte=1"`
	ResponseMIMEType string   `mapstructure:"response-mime-type"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// DefaultParams returns the generation settings used when none are configured.
func DefaultParams() Params {
	return Params{
		Temperature:      Ptr(0.6),
		TopK:             Ptr(40),
		TopP:             Ptr(0.9),
		MaxOutputTokens:  Ptr(512),
		ResponseMIMEType: "text/plain",
	}
}

// WithDefaults fills nil values from DefaultParams.
func (p Params) WithDefaults() Params {
	def := DefaultParams()
	if p.Temperature == nil {
		p.Temperature = def.Temperature
	}
	if p.TopK == nil {
		p.TopK = def.TopK
	}
	if p.TopP == nil {
		p.TopP = def.TopP
	}
	if p.MaxOutputTokens == nil {
		p.MaxOutputTokens = def.MaxOutputTokens
	}
	if p.ResponseMIMEType == "" {
		p.ResponseMIMEType = def.ResponseMIMEType
	}
	return p
}

// Request is everything needed for one completion.
type Request struct {
	UserText       string
	SystemPreamble string
	History        []Turn
	State          any
	Params         Params
}

// Completer produces one assistant reply for a request.
type Completer interface {
	Complete(ctx context.Context, req *Request) (string, error)
}
