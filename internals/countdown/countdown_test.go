package countdown

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func tickAt(m Model, t time.Time) TickMsg {
	return TickMsg{Time: t, tag: m.tag}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestTickWithStatusReschedules(t *testing.T) {
	m := New(&profile.NameChangeStatus{CreatedAt: now.Add(-time.Second)}, "Notch")

	m, cmd := update(t, m, tickAt(m, now))
	assert.NotNil(t, cmd)
	assert.True(t, m.Ticking())
	assert.Equal(t, "29d 23h 59m 59s", m.Countdown().String())
	assert.Contains(t, m.View(), "29d 23h 59m 59s")
}

func TestTickWithoutStatusStops(t *testing.T) {
	m := New(nil, "")
	assert.Nil(t, m.Init())

	m, cmd := update(t, m, tickAt(m, now))
	assert.Nil(t, cmd)
	assert.False(t, m.Ticking())
	assert.Contains(t, m.View(), "No name change data")
}

func TestClearingStatusStopsTicking(t *testing.T) {
	m := New(&profile.NameChangeStatus{CreatedAt: now}, "")
	m, _ = update(t, m, tickAt(m, now))
	require.True(t, m.Ticking())
	scheduled := tickAt(m, now.Add(time.Second))

	m, cmd := update(t, m, StatusMsg{Status: nil})
	assert.Nil(t, cmd)
	assert.False(t, m.Ticking())

	// a tick that was already scheduled does not reschedule
	m, cmd = update(t, m, scheduled)
	assert.Nil(t, cmd)
	assert.False(t, m.Ticking())
}

func TestStatusRestartsTicking(t *testing.T) {
	m := New(nil, "")

	m, cmd := update(t, m, StatusMsg{Status: &profile.NameChangeStatus{CreatedAt: now}})
	assert.NotNil(t, cmd)
	assert.True(t, m.Ticking())
}

func TestFlipsEligibility(t *testing.T) {
	status := &profile.NameChangeStatus{CreatedAt: now.Add(-profile.NameChangeInterval - time.Second)}
	m := New(status, "Notch")

	m, cmd := update(t, m, tickAt(m, now))
	assert.NotNil(t, cmd)
	assert.True(t, status.NameChangeAllowed)
	assert.Contains(t, m.View(), "You can change your name now")
}

func TestQuitWhenEligible(t *testing.T) {
	status := &profile.NameChangeStatus{CreatedAt: now.Add(-profile.NameChangeInterval)}
	m := New(status, "")
	m.QuitWhenEligible = true

	m, cmd := update(t, m, tickAt(m, now))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.False(t, m.Ticking())
}

func TestQuitKey(t *testing.T) {
	m := New(nil, "")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestStatusChangeKeepsSingleTickLoop(t *testing.T) {
	status := &profile.NameChangeStatus{CreatedAt: now}
	m := New(status, "")

	m, cmd := update(t, m, tickAt(m, now))
	require.NotNil(t, cmd)
	stale := tickAt(m, now.Add(time.Second))

	m, _ = update(t, m, StatusMsg{Status: nil})
	m, cmd = update(t, m, StatusMsg{Status: status})
	require.NotNil(t, cmd)
	assert.True(t, m.Ticking())

	// only the loop started by the last status keeps running
	m, cmd = update(t, m, stale)
	assert.Nil(t, cmd)
	assert.True(t, m.Ticking())

	_, cmd = update(t, m, tickAt(m, now.Add(time.Second)))
	assert.NotNil(t, cmd)
}
