package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/volunteam/internal/client/models"
)

func TestState_StartsAnonymous(t *testing.T) {
	s := NewState()
	require.Nil(t, s.User())
	require.False(t, s.IsAuthenticated())
}

func TestState_IsAuthenticatedFollowsUser(t *testing.T) {
	s := NewState()

	s.SetUser(&models.User{ID: "u1", Name: "Joao"})
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "u1", s.User().ID)

	s.SetUser(nil)
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.User())
}

func TestState_SetUserReplacesWholesale(t *testing.T) {
	s := NewState()
	s.SetUser(&models.User{ID: "u1", Avatar: "a.png"})
	s.SetUser(&models.User{ID: "u2"})

	u := s.User()
	require.Equal(t, "u2", u.ID)
	require.Empty(t, u.Avatar)
}
