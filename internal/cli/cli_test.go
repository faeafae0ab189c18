package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/atomlogic/internal/model"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	// flag values survive between Execute calls
	_ = rootCmd.PersistentFlags().Set("quantifiers", "true")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestTranslateCommand(t *testing.T) {
	out, err := executeCommand(t, "translate",
		"PersonX/IND runs/VB,xAttr,tired/JJ",
		"PersonX/IND helps/VB PersonY/IND,oReact,grateful/JJ",
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"A x z ( ( person (x) & runs (x,z) ) -> tired (x) )",
		"A x y z ( ( person (x) & person (y) & helps (x,z,y) ) -> grateful (y) )",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %q", len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTranslateCommand_WithoutQuantifiers(t *testing.T) {
	out, err := executeCommand(t, "translate", "--quantifiers=false", "PersonX/IND runs/VB,xAttr,tired/JJ")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "person (x) & runs (x,z) -> tired (x)" {
		t.Errorf("Unexpected formula: %q", got)
	}
}

func TestTranslateCommand_Malformed(t *testing.T) {
	if _, err := executeCommand(t, "translate", "not a relation"); err == nil {
		t.Error("Expected error for malformed relation")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("Expected version in output, got %q", out)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".atomlogic", "config.yaml")

	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config is not valid yaml: %v", err)
	}
	if cfg.Output.Dir != model.DefaultConfig().Output.Dir {
		t.Errorf("Unexpected output dir: %q", cfg.Output.Dir)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("Expected error when config already exists")
	}
}
