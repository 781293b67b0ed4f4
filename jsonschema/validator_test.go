package jsonschema_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *jsonschema.Validator {
	t.Helper()
	v, err := jsonschema.NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed catalog", func(t *testing.T) {
		t.Parallel()

		data := `{
		  "prefix_commands": {
		    "Moderation": {
		      "description": "Mod tools",
		      "icon": "settings",
		      "commands": [
		        {"name": "!ban", "description": "Bans a user", "aliases": [], "usage": "!ban <user>", "example": "!ban @user"}
		      ]
		    }
		  },
		  "slash_commands": {}
		}`

		err := newValidator(t).Validate([]byte(data))

		assert.NoError(t, err)
	})

	t.Run("accepts unknown icon hints", func(t *testing.T) {
		t.Parallel()

		data := `{"prefix_commands": {"X": {"icon": "sparkles", "commands": []}}, "slash_commands": {}}`

		assert.NoError(t, newValidator(t).Validate([]byte(data)))
	})

	t.Run("ignores a leading byte order mark", func(t *testing.T) {
		t.Parallel()

		data := "\xEF\xBB\xBF" + `{"prefix_commands": {}, "slash_commands": {}}`

		assert.NoError(t, newValidator(t).Validate([]byte(data)))
	})

	t.Run("accepts large numbers in unknown fields", func(t *testing.T) {
		t.Parallel()

		data := `{"version": 12345678901234567890, "prefix_commands": {}, "slash_commands": {}}`

		assert.NoError(t, newValidator(t).Validate([]byte(data)))
	})

	t.Run("reports a missing section", func(t *testing.T) {
		t.Parallel()

		err := newValidator(t).Validate([]byte(`{"prefix_commands": {}}`))

		require.Error(t, err)
		assert.Equal(t, cmdref.EMALFORMED, cmdref.ErrorCode(err))
		assert.Contains(t, cmdref.ErrorMessage(err), "slash_commands")
	})

	t.Run("reports a category without commands", func(t *testing.T) {
		t.Parallel()

		data := `{"prefix_commands": {"General": {"description": "x"}}, "slash_commands": {}}`

		err := newValidator(t).Validate([]byte(data))

		require.Error(t, err)
		assert.Equal(t, cmdref.EMALFORMED, cmdref.ErrorCode(err))
		assert.Contains(t, cmdref.ErrorMessage(err), "/prefix_commands/General")
		assert.Contains(t, cmdref.ErrorMessage(err), "commands")
	})

	t.Run("reports every violation", func(t *testing.T) {
		t.Parallel()

		data := `{
		  "prefix_commands": {"General": {"description": "x"}},
		  "slash_commands": {"Fun": {"commands": [{"name": ""}, {"description": "no name"}]}}
		}`

		err := newValidator(t).Validate([]byte(data))

		require.Error(t, err)
		lines := strings.Split(cmdref.ErrorMessage(err), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "/prefix_commands/General: "), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "/slash_commands/Fun/commands/0/name: "), lines[1])
		assert.True(t, strings.HasPrefix(lines[2], "/slash_commands/Fun/commands/1: "), lines[2])
	})

	t.Run("reports wrongly typed aliases", func(t *testing.T) {
		t.Parallel()

		data := `{"prefix_commands": {}, "slash_commands": {"Fun": {"commands": [{"name": "/joke", "aliases": "lol"}]}}}`

		err := newValidator(t).Validate([]byte(data))

		require.Error(t, err)
		assert.Contains(t, cmdref.ErrorMessage(err), "/slash_commands/Fun/commands/0/aliases")
	})

	t.Run("reports a non-object root", func(t *testing.T) {
		t.Parallel()

		err := newValidator(t).Validate([]byte(`[]`))

		require.Error(t, err)
		assert.Equal(t, cmdref.EMALFORMED, cmdref.ErrorCode(err))
	})

	t.Run("reports trailing data as unavailable", func(t *testing.T) {
		t.Parallel()

		err := newValidator(t).Validate([]byte(`{"prefix_commands": {}, "slash_commands": {}} {}`))

		assert.Equal(t, cmdref.EUNAVAILABLE, cmdref.ErrorCode(err))
	})

	t.Run("reports data that is not JSON as unavailable", func(t *testing.T) {
		t.Parallel()

		err := newValidator(t).Validate([]byte(`<html></html>`))

		require.Error(t, err)
		assert.Equal(t, cmdref.EUNAVAILABLE, cmdref.ErrorCode(err))
	})
}
