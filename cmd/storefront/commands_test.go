package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := newRootCommand()

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "ping"}, names)
}

func TestEnvFlagIsPersistent(t *testing.T) {
	cmd := newRootCommand()

	flag := cmd.PersistentFlags().Lookup("env")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.InheritedFlags().Lookup("env"))
}

func TestServeRejectsArguments(t *testing.T) {
	cmd := newRootCommand()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	assert.Error(t, serve.Args(serve, []string{"extra"}))
}
