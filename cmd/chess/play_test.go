package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/camchamb/custom-chess-server/internal/config"
)

func play(t *testing.T, fen, script string) string {
	t.Helper()
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithVerbosity(0).Build()
	if err := runPlay(cfg, fen, strings.NewReader(script)); err != nil {
		t.Fatalf("runPlay() error = %v", err)
	}
	return out.String()
}

func TestRunPlay_FoolsMate(t *testing.T) {
	out := play(t, "", "f2f3\ne7e5\n\ng2g4\nd8h4\na2a3\nquit\ne2e4\n")

	for _, want := range []string{
		"game ",
		"Black to move",
		"Checkmate, Black wins",
		"error: ",
		"game is finished",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "game is finished\n") {
		t.Errorf("commands after quit were run:\n%s", out)
	}
}

func TestRunPlay_Commands(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{"legal moves", "moves g1\n", []string{"g1f3", "g1h3"}},
		{"fen", "e2e4\nfen\n", []string{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"}},
		{"bad move", "e2e5\n", []string{"error: ", "illegal move"}},
		{"malformed move", "hello\n", []string{"error: ", "malformed input"}},
		{"usage", "moves\nswitch\nload\n", []string{"usage: moves", "usage: switch", "usage: load"}},
		{"resign", "resign\nresign\n", []string{"White resigns", "game is finished"}},
		{"load", "load 4k3/8/8/8/8/8/8/4K2R\n", []string{"1 . . . . K . . R"}},
		{"check", "load 4k3/8/8/8/8/8/8/4K2R\nh1h8\n", []string{"Black to move, in check"}},
		{"unknown game", "switch nope\n", []string{"unknown game"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := play(t, "", tt.script)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunPlay_Games(t *testing.T) {
	out := play(t, "", "new 4k3/8/8/8/8/8/8/4K3 b - - 0 1\ngames\nboard\n")

	if n := strings.Count(out, "game "); n != 2 {
		t.Errorf("created %d games; want 2", n)
	}
	if strings.Count(out, "\n* ") != 1 {
		t.Errorf("want exactly one current game marker:\n%s", out)
	}
	if !strings.HasSuffix(out, "Black to move\n") {
		t.Errorf("board did not show the new game:\n%s", out)
	}
}

func TestRunPlay_JSON(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithOutputFormat(config.JSON).WithVerbosity(0).Build()
	if err := runPlay(cfg, "", strings.NewReader("e2e4\nresign\n")); err != nil {
		t.Fatalf("runPlay() error = %v", err)
	}

	var docs []string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "{") {
			docs = append(docs, line)
		}
	}
	if len(docs) != 2 {
		t.Fatalf("got %d JSON documents; want 2:\n%s", len(docs), out.String())
	}
	if !strings.Contains(docs[1], `"turn":"black"`) || !strings.Contains(docs[1], `"e7e5"`) {
		t.Errorf("position after e2e4 = %s", docs[1])
	}
	if !strings.Contains(out.String(), "Black resigns") {
		t.Errorf("missing resignation:\n%s", out.String())
	}
}

func TestRunPlay_StartFEN(t *testing.T) {
	out := play(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "")
	if !strings.Contains(out, "Stalemate") {
		t.Errorf("output missing stalemate:\n%s", out)
	}

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).Build()
	if err := runPlay(cfg, "not a fen", strings.NewReader("")); err == nil {
		t.Error("runPlay() accepted a bad FEN")
	}
}
