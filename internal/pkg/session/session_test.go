package session_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/session"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)

	token, err := m.Issue(domain.SampleOrganizer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	organizer, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, domain.SampleOrganizer, *organizer)
}

func TestManager_ParseRejects(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.True(t, stderrors.Is(err, errors.ErrInvalidSession))
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := session.NewManager("other-secret", time.Hour).Issue(domain.SampleOrganizer)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidSession))
	})

	t.Run("expired", func(t *testing.T) {
		token, err := session.NewManager("test-secret", -time.Minute).Issue(domain.SampleOrganizer)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})
}
