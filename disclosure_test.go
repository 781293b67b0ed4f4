package cmdref_test

import (
	"testing"

	"github.com/fwojciec/cmdref"
	"github.com/stretchr/testify/assert"
)

func TestDisclosure(t *testing.T) {
	t.Parallel()

	t.Run("zero value has nothing expanded", func(t *testing.T) {
		t.Parallel()

		var d cmdref.Disclosure

		assert.Equal(t, 0, d.Len())
		assert.False(t, d.IsExpanded("prefix-moderation"))
		assert.Empty(t, d.IDs())
	})

	t.Run("toggle expands a collapsed category", func(t *testing.T) {
		t.Parallel()

		d := cmdref.Disclosure{}.Toggle("prefix-moderation")

		assert.True(t, d.IsExpanded("prefix-moderation"))
		assert.Equal(t, []string{"prefix-moderation"}, d.IDs())
	})

	t.Run("toggle collapses an expanded category", func(t *testing.T) {
		t.Parallel()

		d := cmdref.NewDisclosure("prefix-moderation").Toggle("prefix-moderation")

		assert.False(t, d.IsExpanded("prefix-moderation"))
		assert.Equal(t, 0, d.Len())
	})

	t.Run("toggling twice restores the original set", func(t *testing.T) {
		t.Parallel()

		sets := []cmdref.Disclosure{
			{},
			cmdref.NewDisclosure("a"),
			cmdref.NewDisclosure("a", "b", "c"),
		}
		for _, d := range sets {
			for _, id := range []string{"a", "b", "z"} {
				assert.True(t, d.Toggle(id).Toggle(id).Equal(d), id)
			}
		}
	})

	t.Run("toggle leaves the receiver unchanged", func(t *testing.T) {
		t.Parallel()

		d := cmdref.NewDisclosure("a")

		_ = d.Toggle("a")
		_ = d.Toggle("b")

		assert.Equal(t, []string{"a"}, d.IDs())
	})

	t.Run("allows many categories expanded at once", func(t *testing.T) {
		t.Parallel()

		d := cmdref.Disclosure{}.Toggle("b").Toggle("a").Toggle("c")

		assert.Equal(t, []string{"a", "b", "c"}, d.IDs())
	})

	t.Run("accepts unknown ids", func(t *testing.T) {
		t.Parallel()

		d := cmdref.Disclosure{}.Toggle("no-such-category")

		assert.True(t, d.IsExpanded("no-such-category"))
	})

	t.Run("equal compares membership", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cmdref.NewDisclosure("a", "b").Equal(cmdref.NewDisclosure("b", "a")))
		assert.False(t, cmdref.NewDisclosure("a").Equal(cmdref.NewDisclosure("b")))
		assert.False(t, cmdref.NewDisclosure("a").Equal(cmdref.NewDisclosure("a", "b")))
		assert.True(t, cmdref.Disclosure{}.Equal(cmdref.NewDisclosure()))
	})
}
