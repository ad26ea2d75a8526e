package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/samzong/gitcz/internal/config"
	"github.com/samzong/gitcz/internal/gitutil"
	"github.com/samzong/gitcz/internal/workflow"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGit struct {
	notRepo bool
	staged  bool
	commits []string
}

func (g *stubGit) IsGitRepository(context.Context) (bool, error)  { return !g.notRepo, nil }
func (g *stubGit) HasStagedChanges(context.Context) (bool, error) { return g.staged, nil }
func (g *stubGit) AddAll(context.Context) error                   { g.staged = true; return nil }
func (g *stubGit) Commit(_ context.Context, message string, _ ...string) (string, error) {
	g.commits = append(g.commits, message)
	return "", nil
}

type stubPrompter struct {
	answers map[string]workflow.Answer
	err     error
}

func (p *stubPrompter) Ask(_ context.Context, q workflow.Question) (workflow.Answer, error) {
	if p.err != nil {
		return workflow.Answer{}, p.err
	}
	a := p.answers[q.Name]
	if q.Filter != nil {
		a.Text = q.Filter(a.Text)
	}
	return a, nil
}

func happyAnswers() map[string]workflow.Answer {
	return map[string]workflow.Answer{
		"type":    {Text: "docs"},
		"subject": {Text: "describe install"},
		"confirm": {Yes: true},
	}
}

// withStubs swaps the collaborators and output writers for one test.
func withStubs(t *testing.T, g workflow.GitClient, p workflow.Prompter) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	origPrompter, origGit := newPrompter, newGitClient
	origOut, origErr := outWriterFunc, errWriterFunc
	origDryRun, origYes := dryRun, autoYes
	t.Cleanup(func() {
		newPrompter, newGitClient = origPrompter, origGit
		outWriterFunc, errWriterFunc = origOut, origErr
		dryRun, autoYes = origDryRun, origYes
		configErr = nil
	})

	var out, errOut bytes.Buffer
	outWriterFunc = func() io.Writer { return &out }
	errWriterFunc = func() io.Writer { return &errOut }
	newPrompter = func(*config.Config) workflow.Prompter { return p }
	newGitClient = func(zerolog.Logger) workflow.GitClient { return g }

	viper.Reset()
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	return &out, &errOut
}

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "gitcz", rootCmd.Use)
	assert.Equal(t, "gitcz - Conventional Commits assistant", rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "Conventional Commits")
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
	assert.Same(t, rootCmd, RootCmd())
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version)
	assert.Equal(t, "unknown", BuildTime)
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Show gitcz version information", versionCmd.Short)
}

func TestCommandFlags(t *testing.T) {
	flags := rootCmd.Flags()
	persistent := rootCmd.PersistentFlags()

	for _, name := range []string{"config"} {
		f := persistent.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "string", f.Value.Type())
	}
	for _, name := range []string{"verbose", "quiet"} {
		f := persistent.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "bool", f.Value.Type())
	}
	for _, name := range []string{"no-verify", "dry-run", "all", "yes"} {
		f := flags.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "bool", f.Value.Type())
	}
}

func TestExecute_Commits(t *testing.T) {
	g := &stubGit{staged: true}
	_, errOut := withStubs(t, g, &stubPrompter{answers: happyAnswers()})

	rootCmd.SetArgs([]string{"--config", cfgFile})
	code := Execute(context.Background())

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"docs: describe install"}, g.commits)
	assert.Contains(t, errOut.String(), "Successfully committed changes!")
}

func TestExecute_DryRun(t *testing.T) {
	g := &stubGit{staged: true}
	out, _ := withStubs(t, g, &stubPrompter{answers: happyAnswers()})

	rootCmd.SetArgs([]string{"--config", cfgFile, "--dry-run"})
	code := Execute(context.Background())

	assert.Equal(t, 0, code)
	assert.Empty(t, g.commits)
	assert.Equal(t, "docs: describe install\n", out.String())
}

func TestExecute_NoStagedChangesDeclined(t *testing.T) {
	g := &stubGit{staged: false}
	answers := happyAnswers()
	answers["commitWithoutStaged"] = workflow.Answer{Yes: false}
	_, errOut := withStubs(t, g, &stubPrompter{answers: answers})

	rootCmd.SetArgs([]string{"--config", cfgFile})
	code := Execute(context.Background())

	assert.Equal(t, 1, code)
	assert.Empty(t, g.commits)
	assert.Contains(t, errOut.String(), "Commit aborted by user")
}

func TestExecute_ConfirmDeclined(t *testing.T) {
	g := &stubGit{staged: true}
	answers := happyAnswers()
	answers["confirm"] = workflow.Answer{Yes: false}
	_, errOut := withStubs(t, g, &stubPrompter{answers: answers})

	rootCmd.SetArgs([]string{"--config", cfgFile})
	code := Execute(context.Background())

	assert.Equal(t, 1, code)
	assert.Empty(t, g.commits)
	assert.Contains(t, errOut.String(), "Commit aborted by user")
}

func TestExecute_UnsupportedEnvironment(t *testing.T) {
	g := &stubGit{staged: true}
	_, errOut := withStubs(t, g, &stubPrompter{err: workflow.ErrUnsupportedEnvironment})

	rootCmd.SetArgs([]string{"--config", cfgFile})
	code := Execute(context.Background())

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "not supported in this environment")
	assert.NotContains(t, errOut.String(), "aborted by user")
}

func TestExecute_NotRepository(t *testing.T) {
	g := &stubGit{notRepo: true}
	_, errOut := withStubs(t, g, &stubPrompter{answers: happyAnswers()})

	rootCmd.SetArgs([]string{"--config", cfgFile})
	code := Execute(context.Background())

	assert.Equal(t, 1, code)
	assert.Equal(t, "Not a git repository (run gitcz inside a work tree)\n", errOut.String())
	assert.Empty(t, g.commits)
}

func TestExecute_Help(t *testing.T) {
	withStubs(t, &stubGit{staged: true}, &stubPrompter{})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		_ = rootCmd.Flags().Set("help", "false")
	})

	rootCmd.SetArgs([]string{"--help"})
	code := Execute(context.Background())

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "--dry-run")
}

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: ""},
		{name: "abort", err: workflow.ErrUserAbort, want: "Commit aborted by user\n"},
		{name: "not repository", err: workflow.ErrNotRepository, want: "Not a git repository (run gitcz inside a work tree)\n"},
		{name: "interrupted", err: context.Canceled, want: "\nOperation cancelled\n"},
		{
			name: "process",
			err:  &gitutil.ProcessError{Action: "git commit failed", ExitCode: 1, Stderr: "hook rejected"},
			want: "Error: Git command failed: git commit failed (exit code 1): hook rejected\n",
		},
		{name: "unexpected", err: errors.New("boom"), want: "Error: boom\n"},
		{name: "config", err: fmt.Errorf("configuration error: %w", errors.New("bad yaml")), want: "Error: configuration error: bad yaml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			report(&buf, workflow.Classify(tt.err), tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConfigCommands(t *testing.T) {
	out, _ := withStubs(t, &stubGit{}, &stubPrompter{})

	rootCmd.SetArgs([]string{"--config", cfgFile, "config", "set", "types", "feat, fix,revert"})
	require.Equal(t, 0, Execute(context.Background()))
	assert.Contains(t, out.String(), "[feat fix revert]")

	rootCmd.SetArgs([]string{"--config", cfgFile, "config", "set", "signoff", "true"})
	require.Equal(t, 0, Execute(context.Background()))

	content, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "revert")
	assert.Contains(t, string(content), "signoff: true")

	out.Reset()
	rootCmd.SetArgs([]string{"--config", cfgFile, "config", "get"})
	require.Equal(t, 0, Execute(context.Background()))
	assert.Contains(t, out.String(), "- revert")
	assert.Contains(t, out.String(), "max_subject_length: 72")

	rootCmd.SetArgs([]string{"--config", cfgFile, "config", "set", "signoff", "maybe"})
	assert.Equal(t, 1, Execute(context.Background()))
}

func TestConfigCommandStructure(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Equal(t, "Manage gitcz configuration", configCmd.Short)
	assert.Equal(t, "set", configSetCmd.Use)
	assert.Equal(t, "Set configuration item", configSetCmd.Short)
}
