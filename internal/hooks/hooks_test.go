package hooks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandVariables(t *testing.T) {
	vars := Variables{Wizard: "onboarding", Step: 2, Title: "Pick a name", Summary: "acme"}

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "no placeholders", command: "echo hi", want: "echo hi"},
		{name: "step and title", command: "echo {{step}}:{{title}}", want: "echo 2:Pick a name"},
		{name: "summary twice", command: "{{summary}}-{{summary}}", want: "acme-acme"},
		{name: "wizard", command: "notify {{wizard}}", want: "notify onboarding"},
		{name: "unknown left alone", command: "{{session}}", want: "{{session}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, expandVariables(tt.command, vars))
		})
	}

	require.Equal(t, "step=", expandVariables("step={{step}}", Variables{}))
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	workDir := t.TempDir()
	vars := Variables{Step: 1, Title: "Name", Summary: "blue"}

	t.Run("nil hook", func(t *testing.T) {
		out, err := Execute(ctx, nil, workDir, vars)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("expands placeholders", func(t *testing.T) {
		out, err := Execute(ctx, &HookConfig{Command: "echo '{{step}} {{summary}}'"}, workDir, vars)
		require.NoError(t, err)
		require.Equal(t, "1 blue\n", out)
	})

	t.Run("exports environment", func(t *testing.T) {
		out, err := Execute(ctx, &HookConfig{Command: `printf '%s' "$VSTEPPER_TITLE"`}, workDir, vars)
		require.NoError(t, err)
		require.Equal(t, "Name", out)
	})

	t.Run("runs in work dir", func(t *testing.T) {
		out, err := Execute(ctx, &HookConfig{Command: "touch marker && echo ok"}, workDir, vars)
		require.NoError(t, err)
		require.Equal(t, "ok\n", out)
		require.FileExists(t, filepath.Join(workDir, "marker"))
	})

	t.Run("failure is reported in output", func(t *testing.T) {
		out, err := Execute(ctx, &HookConfig{Command: "echo oops >&2; exit 3"}, workDir, vars)
		require.NoError(t, err)
		require.Contains(t, out, "[Hook command failed")
		require.Contains(t, out, "oops")
	})

	t.Run("timeout", func(t *testing.T) {
		out, err := Execute(ctx, &HookConfig{Command: "echo partial; sleep 5", Timeout: 1}, workDir, vars)
		require.NoError(t, err)
		require.Contains(t, out, "[Hook timed out after 1s]")
	})
}

func TestExecute_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute(ctx, &HookConfig{Command: "echo test"}, t.TempDir(), Variables{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecuteAll(t *testing.T) {
	ctx := context.Background()
	hooks := []*HookConfig{
		{Command: "echo first"},
		{Command: "true"},
		{Command: "echo second"},
	}

	out, err := ExecuteAll(ctx, hooks, t.TempDir(), Variables{})
	require.NoError(t, err)
	require.Equal(t, "first\n\nsecond\n", out)

	out, err = ExecuteAll(ctx, nil, t.TempDir(), Variables{})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		require.Nil(t, cfg)
	})

	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		content := `version: 1
hooks:
  on_step_complete:
    - command: "echo {{title}}"
      timeout: 5
  on_finish:
    - command: "echo done"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		require.Equal(t, 1, cfg.Version)
		require.Len(t, cfg.Hooks.OnStepComplete, 1)
		require.Equal(t, "echo {{title}}", cfg.Hooks.OnStepComplete[0].Command)
		require.Equal(t, 5, cfg.Hooks.OnStepComplete[0].Timeout)
		require.Len(t, cfg.Hooks.OnFinish, 1)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hooks: [unclosed"), 0644))

		_, err := LoadConfig(dir)
		require.Error(t, err)
	})
}
