package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

func TestIsContainerRole(t *testing.T) {
	require.True(t, ir.RoleForm.IsContainerRole())
	require.True(t, ir.RoleModal.IsContainerRole())
	require.False(t, ir.RoleButton.IsContainerRole())
	require.False(t, ir.RoleText.IsContainerRole())
}

func TestRenderPriorityOverlaysFloatAboveContainers(t *testing.T) {
	require.Greater(t, ir.RoleToast.RenderPriority(), ir.RoleModal.RenderPriority())
	require.Greater(t, ir.RoleModal.RenderPriority(), ir.RoleDropdown.RenderPriority())
	require.Greater(t, ir.RoleDropdown.RenderPriority(), ir.RoleForm.RenderPriority())
	require.Greater(t, ir.RoleForm.RenderPriority(), ir.RoleSection.RenderPriority())
	require.Greater(t, ir.RoleSection.RenderPriority(), ir.RolePage.RenderPriority())
}

func TestRenderPriorityDefaultsForUnlistedRoles(t *testing.T) {
	require.Equal(t, 30, ir.RoleButton.RenderPriority())
	require.Equal(t, 30, ir.RoleText.RenderPriority())
}
