package conversation

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/shashikanthshadow/talentscout/internal/candidate"
)

//go:embed prompts/system.md
var systemPrompt string

// SystemPrompt returns the persona and rules sent with every request.
func SystemPrompt() string {
	return strings.TrimSpace(systemPrompt)
}

const greetingPrompt = "Greet the candidate. Briefly explain you're here to collect some basics and then ask tailored tech questions.\n" +
	"Politely mention they can type 'exit' anytime to finish. Ask the first question from the collection order."

// Messages emitted without a model call.
const (
	MsgClosing          = "Thanks for your time! We'll review your details and reach out with next steps. Have a great day!"
	MsgMissingTechStack = "I didn't catch your tech stack. Could you list your languages, frameworks, databases, and tools?"
	MsgQuestionsFailed  = "Sorry, I ran into an issue generating questions. Please try again."
	MsgRefreshFailed    = "Couldn't generate questions right now. Please try again."
	MsgAfterQuestions   = "If you'd like to add or change your tech stack, type it in. Otherwise, type 'exit' to conclude."
	MsgAfterRefresh     = "You can continue refining your stack or type 'exit' to finish."
	MsgEnded            = "This conversation has ended. Reset it to start over."
	msgStaticGreeting   = "Hello! I'm TalentScout, the hiring assistant. I'll collect a few basics and then ask technical questions tailored to your stack. You can type 'exit' anytime to finish."
)

func followUpPrompt(field candidate.Field, hint string) string {
	return fmt.Sprintf("Ask the candidate for '%s'. Use this hint: '%s'. Ask one concise question only.", field, hint)
}

func questionsPrompt(techStack string) string {
	return "Generate tailored technical interview questions based on the candidate's tech stack.\n" +
		fmt.Sprintf("Tech stack provided: %s\n", techStack) +
		"For each distinct technology mentioned, provide 3-5 questions mixing basic, intermediate, and advanced.\n" +
		"Group by technology with a short heading. Keep questions concise and job-relevant.\n"
}

// staticGreeting is used when the model cannot produce the greeting.
func staticGreeting() string {
	first := candidate.CollectionOrder()[0]
	return msgStaticGreeting + "\n\n" + first.Hint
}
