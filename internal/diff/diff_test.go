package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffNoChange(t *testing.T) {
	old := []string{"PORTNAME", "DISTVERSION", "CATEGORIES"}
	entries := Diff(old, old)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, Common, e.Op)
	}
	assert.True(t, Equal(old, old))
}

func TestDiffInsertion(t *testing.T) {
	old := []string{"PORTNAME", "CATEGORIES"}
	new := []string{"PORTNAME", "DISTVERSION", "CATEGORIES"}
	entries := Diff(old, new)

	var added []string
	for _, e := range entries {
		if e.Op == Add {
			added = append(added, e.Element)
		}
	}
	assert.Equal(t, []string{"DISTVERSION"}, added)
	assert.False(t, Equal(old, new))
}

func TestDiffDeletion(t *testing.T) {
	old := []string{"PORTNAME", "DISTVERSION", "CATEGORIES"}
	new := []string{"PORTNAME", "CATEGORIES"}
	entries := Diff(old, new)

	var removed []string
	for _, e := range entries {
		if e.Op == Delete {
			removed = append(removed, e.Element)
		}
	}
	assert.Equal(t, []string{"DISTVERSION"}, removed)
}

func TestDiffReplace(t *testing.T) {
	old := []string{"A", "B", "C"}
	new := []string{"A", "X", "C"}
	entries := Diff(old, new)

	var ops []Op
	for _, e := range entries {
		ops = append(ops, e.Op)
	}
	assert.Contains(t, ops, Delete)
	assert.Contains(t, ops, Add)
	assert.Contains(t, ops, Common)
}

func TestUnifiedLines(t *testing.T) {
	text := UnifiedLines("a\nb\nc\n", "a\nx\nc\n", 3)
	assert.Contains(t, text, "-b")
	assert.Contains(t, text, "+x")
}

func TestRender(t *testing.T) {
	entries := []Entry{
		{Op: Common, Element: "A"},
		{Op: Delete, Element: "B"},
		{Op: Add, Element: "X"},
	}
	out := Render(entries)
	assert.Contains(t, out, "  A\n")
	assert.Contains(t, out, "- B\n")
	assert.Contains(t, out, "+ X\n")
}
