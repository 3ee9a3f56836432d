package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNavigationLazyLoadsOncePerTab(t *testing.T) {
	nav := NewNavigation(zap.NewNop())

	loads := 0
	nav.RegisterLoader(TabMatches, func() error {
		loads++
		return nil
	})

	require.NoError(t, nav.ActivateTab(TabMatches))
	require.NoError(t, nav.ActivateTab(TabOverview))
	require.NoError(t, nav.ActivateTab(TabMatches))

	require.Equal(t, 1, loads, "loader must run only on the first activation")
	require.Equal(t, TabMatches, nav.ActiveTab())
}

func TestNavigationFailedLoadRetriesNextActivation(t *testing.T) {
	nav := NewNavigation(zap.NewNop())

	loads := 0
	nav.RegisterLoader(TabResumes, func() error {
		loads++
		if loads == 1 {
			return errors.New("backend unavailable")
		}
		return nil
	})

	require.Error(t, nav.ActivateTab(TabResumes))
	require.Equal(t, TabResumes, nav.ActiveTab(), "tab stays active on a failed load")

	require.NoError(t, nav.ActivateTab(TabResumes))
	require.NoError(t, nav.ActivateTab(TabResumes))
	require.Equal(t, 2, loads)
}

func TestNavigationResetTabsReloads(t *testing.T) {
	nav := NewNavigation(zap.NewNop())

	loads := 0
	nav.RegisterLoader(TabPositions, func() error {
		loads++
		return nil
	})

	require.NoError(t, nav.ActivateTab(TabPositions))
	nav.ResetTabs()
	require.Equal(t, TabOverview, nav.ActiveTab())

	require.NoError(t, nav.ActivateTab(TabPositions))
	require.Equal(t, 2, loads, "project switch must re-trigger lazy loads")
}

func TestNavigationNotifications(t *testing.T) {
	nav := NewNavigation(zap.NewNop())

	id := nav.Notify("error", "Upload failed", "resume.pdf could not be parsed")
	other := nav.Notify("info", "Done", "matching finished")
	require.NotEqual(t, id, other)
	require.Len(t, nav.Notifications(), 2)

	nav.RemoveNotification(id)
	notes := nav.Notifications()
	require.Len(t, notes, 1)
	require.Equal(t, other, notes[0].ID)

	nav.ClearNotifications()
	require.Empty(t, nav.Notifications())
}
