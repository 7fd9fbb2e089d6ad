package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafCommandBuild(t *testing.T) {
	cmd := LeafCommand{
		Use:   "test",
		Short: "A test command",
		Args:  cobra.ExactArgs(1),
		BoolFlags: []BoolFlag{
			{Name: "totals", Usage: "show weekly totals", Default: false},
			{Name: "yes", Usage: "skip confirmation", Default: true},
		},
		StrFlags: []StringFlag{
			{Name: "calendar", Usage: "calendar file", Default: "training.ics"},
		},
		IntFlags: []IntFlag{
			{Name: "offset", Usage: "weeks to wait", Default: 2},
		},
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "test", cmd.Use)
	assert.Equal(t, "A test command", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	totals := cmd.Flags().Lookup("totals")
	require.NotNil(t, totals)
	assert.Equal(t, "false", totals.DefValue)

	yes := cmd.Flags().Lookup("yes")
	require.NotNil(t, yes)
	assert.Equal(t, "true", yes.DefValue)

	calendar := cmd.Flags().Lookup("calendar")
	require.NotNil(t, calendar)
	assert.Equal(t, "training.ics", calendar.DefValue)

	offset := cmd.Flags().Lookup("offset")
	require.NotNil(t, offset)
	assert.Equal(t, "2", offset.DefValue)
}

func TestLeafCommandBuildNoFlags(t *testing.T) {
	cmd := LeafCommand{
		Use:   "simple",
		Short: "A simple command",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "simple", cmd.Use)
	assert.False(t, cmd.HasFlags())
}

func TestLeafCommandValidArgs(t *testing.T) {
	cmd := LeafCommand{
		Use:       "pick SHELL",
		ValidArgs: []string{"bash", "zsh"},
		RunE:      func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, []string{"bash", "zsh"}, cmd.ValidArgs)
}

func TestGroupCommandBuild(t *testing.T) {
	sub1 := &cobra.Command{Use: "sub1"}
	sub2 := &cobra.Command{Use: "sub2"}

	cmd := GroupCommand{
		Use:         "group",
		Short:       "A group command",
		Subcommands: []*cobra.Command{sub1, sub2},
	}.Build()

	assert.Equal(t, "group", cmd.Use)
	assert.Equal(t, "A group command", cmd.Short)
	assert.Nil(t, cmd.RunE)

	names := make([]string, len(cmd.Commands()))
	for i, c := range cmd.Commands() {
		names[i] = c.Name()
	}
	assert.Contains(t, names, "sub1")
	assert.Contains(t, names, "sub2")
}

func TestGroupCommandBuildNoSubcommands(t *testing.T) {
	cmd := GroupCommand{
		Use:   "empty",
		Short: "An empty group",
	}.Build()

	assert.Equal(t, "empty", cmd.Use)
	assert.Empty(t, cmd.Commands())
}
