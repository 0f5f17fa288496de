package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCmd_Output(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCatalogCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"catalog"})

	require.NoError(t, cmd.Execute())

	for _, want := range []string{"CATEGORY", "husky", ".husky/pre-push", "wordpress-router", "composer.json scripts.lint", "user-asset"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestCatalogCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCatalogCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"catalog", "extra"})

	require.Error(t, cmd.Execute())
}
