// Package conversation drives the intake chat: it greets the candidate, collects
// the required fields one at a time and asks the model for interview questions
// once the tech stack is known.
package conversation

import (
	"context"
	"strings"

	"github.com/shashikanthshadow/talentscout/internal/ai"
	"github.com/shashikanthshadow/talentscout/internal/candidate"
	"github.com/shashikanthshadow/talentscout/internal/logger"

	"go.uber.org/zap"
)

// Reply is what the assistant said during one turn.
type Reply struct {
	Messages []string
	Phase    Phase
}

// Ended reports whether the conversation is over after this turn.
func (r Reply) Ended() bool {
	return r.Phase.Terminal()
}

// Orchestrator handles user turns for a session. It keeps no state of its own;
// everything lives on the Session passed to each call.
type Orchestrator struct {
	completer ai.Completer
	params    ai.Params
	preamble  string
	logger    *zap.Logger
}

// NewOrchestrator returns an Orchestrator that uses completer for every generated message.
func NewOrchestrator(completer ai.Completer, params ai.Params, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		completer: completer,
		params:    params.WithDefaults(),
		preamble:  SystemPrompt(),
		logger:    logger.WithFields(log),
	}
}

// requestState is the part of the session the model sees.
type requestState struct {
	Candidate map[string]any `json:"candidate"`
	Phase     Phase          `json:"phase"`
}

// Start emits the greeting and moves an intro session to collecting.
// It does nothing for sessions past the intro.
func (o *Orchestrator) Start(ctx context.Context, s *Session) Reply {
	mark := len(s.History)
	if s.Phase != PhaseIntro {
		return o.reply(s, mark)
	}

	log := o.turnLogger(s, "")
	greeting, err := o.complete(ctx, s, greetingPrompt, nil)
	if err != nil {
		log.Warn("generating greeting, using the built-in one", zap.Error(err))
		greeting = staticGreeting()
	}

	s.say(greeting)
	s.Phase = PhaseCollecting
	log.Info("conversation started")

	return o.reply(s, mark)
}

// Handle processes one user message and returns what the assistant said in response.
// Gateway failures never surface as errors; they are replaced with fallback messages.
func (o *Orchestrator) Handle(ctx context.Context, s *Session, message string) Reply {
	mark := len(s.History)

	if s.Phase == PhaseIntro {
		o.Start(ctx, s)
	}

	if s.Phase.Terminal() {
		return Reply{Messages: []string{MsgEnded}, Phase: s.Phase}
	}

	if IsExit(message) {
		s.hear(message)
		s.say(MsgClosing)
		s.Phase = PhaseEnded
		o.turnLogger(s, "").Info("conversation ended by candidate")
		return o.reply(s, mark)
	}

	s.hear(message)

	field, missing := candidate.FirstMissing(s.Candidate)
	if !missing {
		o.refreshQuestions(ctx, s, message)
		return o.reply(s, mark)
	}

	log := o.turnLogger(s, field.String())
	if !s.advance(field, message) {
		log.Debug("answer rejected", zap.String("reason", s.Error))
		s.say(s.Error)
		return o.reply(s, mark)
	}
	log.Debug("answer stored")

	next, missing := candidate.FirstMissing(s.Candidate)
	if missing {
		o.askFor(ctx, s, next)
		return o.reply(s, mark)
	}

	s.Phase = PhaseQuestions
	log.Info("all fields collected")

	tech, _ := s.Candidate.Get(candidate.TechStack)
	o.generateQuestions(ctx, s, tech, MsgQuestionsFailed, MsgAfterQuestions)

	return o.reply(s, mark)
}

func (o *Orchestrator) askFor(ctx context.Context, s *Session, field candidate.Field) {
	hint, _ := candidate.Hint(field)

	question, err := o.complete(ctx, s, followUpPrompt(field, hint), s.History)
	if err != nil {
		o.turnLogger(s, field.String()).Warn("generating follow-up question, asking the hint", zap.Error(err))
		question = hint
	}

	s.say(question)
}

func (o *Orchestrator) refreshQuestions(ctx context.Context, s *Session, message string) {
	s.Phase = PhaseQuestions

	previous, _ := s.Candidate.Get(candidate.TechStack)
	merged := candidate.MergeTechStack(previous, message)
	if merged != "" {
		s.Candidate.Set(candidate.Value{Field: candidate.TechStack, Text: merged})
	}

	o.turnLogger(s, candidate.TechStack.String()).Debug("tech stack merged", zap.String("tech_stack", merged))

	o.generateQuestions(ctx, s, merged, MsgRefreshFailed, MsgAfterRefresh)
}

func (o *Orchestrator) generateQuestions(ctx context.Context, s *Session, tech, failure, after string) {
	if strings.TrimSpace(tech) == "" {
		s.say(MsgMissingTechStack)
		return
	}

	questions, err := o.complete(ctx, s, questionsPrompt(tech), s.History)
	if err != nil {
		o.turnLogger(s, candidate.TechStack.String()).Warn("generating questions", zap.Error(err))
		s.say(failure)
		return
	}

	s.Questions = questions
	s.say(questions)
	s.say(after)
}

func (o *Orchestrator) complete(ctx context.Context, s *Session, prompt string, history []ai.Turn) (string, error) {
	fields, err := candidate.Snapshot(s.Candidate)
	if err != nil {
		return "", err
	}

	return o.completer.Complete(ctx, &ai.Request{
		UserText:       prompt,
		SystemPreamble: o.preamble,
		History:        history,
		State:          requestState{Candidate: fields, Phase: s.Phase},
		Params:         o.params,
	})
}

func (o *Orchestrator) reply(s *Session, mark int) Reply {
	out := Reply{Phase: s.Phase, Messages: make([]string, 0)}
	if mark > len(s.History) {
		return out
	}

	for _, turn := range s.History[mark:] {
		if turn.Role == ai.RoleAssistant {
			out.Messages = append(out.Messages, turn.Text)
		}
	}
	return out
}

func (o *Orchestrator) turnLogger(s *Session, field string) *zap.Logger {
	return logger.WithFields(o.logger, logger.TurnFields(s.ID, s.Phase.String(), field)...)
}
