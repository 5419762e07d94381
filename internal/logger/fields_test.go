package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTurnFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sessionID string
		phase     string
		field     string
		want      map[string]string
	}{
		{
			name:      "collecting a field",
			sessionID: "3f2a",
			phase:     "collecting",
			field:     "email",
			want:      map[string]string{FieldSession: "3f2a", FieldPhase: "collecting", FieldCandidateField: "email"},
		},
		{
			name:      "no field outside collection",
			sessionID: "3f2a",
			phase:     "questions",
			want:      map[string]string{FieldSession: "3f2a", FieldPhase: "questions"},
		},
		{
			name:      "blank values are dropped",
			sessionID: "  ",
			phase:     " ended ",
			field:     "\t",
			want:      map[string]string{FieldPhase: "ended"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := TurnFields(tt.sessionID, tt.phase, tt.field)
			if len(fields) != len(tt.want) {
				t.Fatalf("expected %d fields, got %+v", len(tt.want), fields)
			}
			for _, f := range fields {
				if want, ok := tt.want[f.Key]; !ok || f.String != want {
					t.Fatalf("unexpected field %s=%q", f.Key, f.String)
				}
			}
		})
	}
}

func TestTurnLoggerCarriesGatewayAndTurnFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	gateway := WithCommonFields(zap.New(core), "  gemini ", "gemini-2.0-flash")
	turn := WithFields(gateway, TurnFields("3f2a", "collecting", "phone")...)
	turn.Debug("answer rejected")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	for key, want := range map[string]string{
		FieldProvider:       "gemini",
		FieldModel:          "gemini-2.0-flash",
		FieldSession:        "3f2a",
		FieldPhase:          "collecting",
		FieldCandidateField: "phone",
	} {
		if ctx[key] != want {
			t.Fatalf("expected %s=%q, got %v", key, want, ctx[key])
		}
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	log := WithFields(nil, TurnFields("3f2a", "intro", "")...)
	if log == nil {
		t.Fatal("expected a no-op logger")
	}
	log.Info("conversation started")

	if got := CommonFields("", " "); len(got) != 0 {
		t.Fatalf("expected no fields, got %+v", got)
	}
}

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		json, debug bool
	}{{false, false}, {true, false}, {false, true}, {true, true}} {
		log, err := New(tc.json, tc.debug)
		if err != nil {
			t.Fatalf("unexpected error for json=%v debug=%v: %v", tc.json, tc.debug, err)
		}

		if got := log.Core().Enabled(zapcore.DebugLevel); got != tc.debug {
			t.Fatalf("expected debug enabled=%v, got %v", tc.debug, got)
		}
	}
}
