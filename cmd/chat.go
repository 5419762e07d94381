package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/shashikanthshadow/talentscout/internal/ai"
	"github.com/shashikanthshadow/talentscout/internal/ai/gemini"
	"github.com/shashikanthshadow/talentscout/internal/candidate"
	"github.com/shashikanthshadow/talentscout/internal/conversation"
	"github.com/shashikanthshadow/talentscout/internal/logger"
	"github.com/shashikanthshadow/talentscout/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptSnapshot = "Show candidate snapshot"
	PromptExport   = "Export CSV"
	PromptReset    = "Reset conversation"
	PromptBack     = "back"
	menuCommand    = ":menu"
	speaker        = "TalentScout"
)

var menu = promptui.Select{
	Label: "Session",
	Items: []string{PromptSnapshot, PromptExport, PromptReset, PromptBack},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interview intake conversation",
	Run: func(cmd *cobra.Command, _ []string) {
		chat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("export-file", "o", "", "where the candidate CSV is written from the session menu (default candidate.csv)")
	chatCmd.Flags().StringP("model", "m", "", "gemini model to use")

	viper.BindPFlag("export-file", chatCmd.Flags().Lookup("export-file"))
	viper.BindPFlag("ai.gemini.model", chatCmd.Flags().Lookup("model"))
}

// chat is the interactive conversation command.
func chat(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting talentscout", zap.String("version", version))

	completer, err := newCompleter(ctx, config, logger)
	if err != nil {
		logger.Fatal(
			"creating the gemini client",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY (or GEMINI_API_KEY_FILE) in the environment or .env, or ai.gemini.api-key in the config file"),
		)
	}

	s := &session{
		orchestrator: conversation.NewOrchestrator(completer, config.AI.Gemini.Params, logger),
		state:        conversation.NewSession(),
		out:          cmd.OutOrStdout(),
		exportFile:   config.ExportFile,
		logger:       logger,
		readLine:     readLine,
		selectAction: selectAction,
	}

	if err := s.run(ctx); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

func newCompleter(ctx context.Context, config *Config, logger *zap.Logger) (ai.Completer, error) {
	provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.AI.Provider)
	}

	gc := config.AI.Gemini
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  gc.APIKeyFile,
		Value: gc.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		if errors.Is(err, secrets.ErrNotConfigured) {
			return nil, fmt.Errorf("%w: %w", gemini.ErrMissingCredential, err)
		}
		return nil, err
	}

	return gemini.NewGenerator(ctx, gemini.Config{
		APIKey:        apiKey,
		Model:         gc.Model,
		BaseURL:       gc.BaseURL,
		Timeout:       gc.Timeout,
		HistoryWindow: historyWindow(config.HistoryWindow),
		MaxLogLength:  gc.MaxLogLength,
	}, logger)
}

// historyWindow translates the configured window for the gateway, which reads
// zero as its default and a negative value as no history.
func historyWindow(configured int) int {
	if configured == 0 {
		return -1
	}
	return configured
}

// session ties the terminal to one conversation.
type session struct {
	orchestrator *conversation.Orchestrator
	state        *conversation.Session
	out          io.Writer
	exportFile   string
	logger       *zap.Logger

	readLine     func() (string, error)
	selectAction func() (string, error)
}

func (s *session) run(ctx context.Context) error {
	s.print(s.orchestrator.Start(ctx, s.state))

	for {
		line, err := s.readLine()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
				s.logger.Info("exiting", zap.String("reason", "input closed"))
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) == menuCommand {
			action, err := s.selectAction()
			if errors.Is(err, promptui.ErrInterrupt) {
				continue
			}
			if err != nil {
				return err
			}
			if err := s.handleAction(ctx, action); err != nil {
				return err
			}
			continue
		}

		reply := s.orchestrator.Handle(ctx, s.state, line)
		s.print(reply)

		if reply.Ended() {
			s.logger.Info("exiting", zap.String("reason", "conversation ended"))
			return nil
		}
	}
}

func (s *session) handleAction(ctx context.Context, action string) error {
	switch action {
	case PromptSnapshot:
		snapshot, err := s.state.Snapshot()
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		pretty, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		fmt.Fprintln(s.out, string(pretty))
		return nil
	case PromptExport:
		if err := exportCandidate(s.exportFile, s.state.Candidate); err != nil {
			return err
		}
		s.logger.Info("candidate exported", zap.String("filename", s.exportFile))
		return nil
	case PromptReset:
		s.state.Reset()
		s.logger.Info("conversation reset", zap.String("session_id", s.state.ID))
		s.print(s.orchestrator.Start(ctx, s.state))
		return nil
	case PromptBack:
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) print(reply conversation.Reply) {
	for _, message := range reply.Messages {
		fmt.Fprintf(s.out, "%s: %s\n\n", speaker, message)
	}
}

func exportCandidate(path string, c *candidate.Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := candidate.WriteCSV(f, c); err != nil {
		return err
	}

	return f.Close()
}

func readLine() (string, error) {
	input := promptui.Prompt{
		Label: "You (type 'exit' to finish, " + menuCommand + " for options)",
	}
	return input.Run()
}

func selectAction() (string, error) {
	_, action, err := menu.Run()
	return action, err
}
