package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd_Commands(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"selectors", "facet", "actions", "version"})

	for _, flag := range []string{"debug", "non-interactive", "json", "format", "network", "profile", "out", "timeout"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing global flag %s", flag)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "treb-diamond version dev\n", out)
}

func TestActionsCmd(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := executeCommand(t, "actions")
		require.NoError(t, err)
		assert.Contains(t, out, "Add")
		assert.Contains(t, out, "Replace")
		assert.Contains(t, out, "Remove")
	})

	t.Run("json", func(t *testing.T) {
		out, err := executeCommand(t, "actions", "--json")
		require.NoError(t, err)

		var actions []usecase.FacetActionInfo
		require.NoError(t, json.Unmarshal([]byte(out), &actions))
		require.Len(t, actions, 3)
		assert.Equal(t, "Remove", actions[2].Name)
		assert.Equal(t, uint8(2), actions[2].Code)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := executeCommand(t, "actions", "--format", "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})
}

func TestFacetCmd_RequiresSource(t *testing.T) {
	_, err := executeCommand(t, "facet", "0x1111111111111111111111111111111111111111")
	assert.Error(t, err)
}

func TestSelectorsCmd_KeepsCommasInSignatures(t *testing.T) {
	cmd := NewSelectorsCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--only", "transfer(address,uint256)", "--only", "owner()"}))

	only, err := cmd.Flags().GetStringArray("only")
	require.NoError(t, err)
	assert.Equal(t, []string{"transfer(address,uint256)", "owner()"}, only)
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected config.OutputFormat
		wantErr  bool
	}{
		{name: "default", args: nil, expected: config.OutputTable},
		{name: "json flag", args: []string{"--json"}, expected: config.OutputJSON},
		{name: "json flag wins over format", args: []string{"--json", "--format", "yaml"}, expected: config.OutputJSON},
		{name: "yaml", args: []string{"--format", "yaml"}, expected: config.OutputYAML},
		{name: "unknown", args: []string{"--format", "csv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd()
			actions, _, err := root.Find([]string{"actions"})
			require.NoError(t, err)
			require.NoError(t, actions.ParseFlags(tt.args))

			format, err := outputFormat(actions)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
