package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_LevelFromEnv(t *testing.T) {
	cases := []struct {
		env  string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"err", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.env)
			Init()
			if got := L().GetLevel(); got != tc.want {
				t.Fatalf("LOG_LEVEL=%s: want %s, got %s", tc.env, tc.want, got)
			}
		})
	}
}

func TestL_InitializesLazily(t *testing.T) {
	base = zerolog.Logger{} // reset global
	if L() == nil {
		t.Fatalf("expected lazily initialized logger")
	}
	if L().GetLevel() == zerolog.NoLevel {
		t.Fatalf("logger still uninitialized after L()")
	}
}

func TestInit_PrettyDoesNotPanic(t *testing.T) {
	t.Setenv("LOG_PRETTY", "true")
	Init()
	L().Info().Msg("pretty output smoke test")
}
