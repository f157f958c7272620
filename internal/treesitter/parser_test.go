package treesitter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseModuleProducesRootNode(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	defer p.Close()

	tree, err := p.ParseModule([]byte("let x = 1;"))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	require.NotNil(t, root)
	require.False(t, root.HasError())
}

func TestParseModuleFlagsSyntaxErrors(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	defer p.Close()

	tree, err := p.ParseModule([]byte("let x = ;"))
	require.NoError(t, err)
	defer tree.Close()

	require.True(t, tree.RootNode().HasError())
}
