package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/minepkg/mcprofile/internals/minecraft/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorUnauthorized(t *testing.T) {
	err := &profile.Error{
		Action:     profile.ActionGetProfile,
		Kind:       profile.ErrServer,
		StatusCode: 401,
		Cause:      "the server responded with a bad statuscode 401",
	}

	var cliErr *CliError
	require.True(t, errors.As(FromError(err), &cliErr))
	assert.Equal(t, "Get profile failed. because the server responded with a bad statuscode 401", cliErr.Text)
	assert.Equal(t, "server_error", cliErr.Code)
	assert.Len(t, cliErr.Suggestions, 1)
	assert.ErrorIs(t, cliErr, profile.ErrServer)
}

func TestFromErrorWrapped(t *testing.T) {
	err := fmt.Errorf("refresh: %w", &profile.Error{
		Action: profile.ActionChangeName,
		Kind:   profile.ErrInvalidCredential,
		Cause:  profile.ErrInvalidCredential.Error(),
	})

	var cliErr *CliError
	require.True(t, errors.As(FromError(err), &cliErr))
	assert.Equal(t, "invalid_credential", cliErr.Code)
}

func TestFromErrorPassesOtherErrors(t *testing.T) {
	err := errors.New("boom")
	assert.Same(t, err, FromError(err))
}

func TestRenderContainsMessage(t *testing.T) {
	EmojiEnabled = false
	rendered := Render(&CliError{Text: "nope", Suggestions: []string{"try again"}})
	assert.Contains(t, rendered, "Error: nope")
	assert.Contains(t, rendered, "try again")
}
