package vfs

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRun(t *testing.T) {
	var buf bytes.Buffer
	base := NewMemory("meeting-23.org")
	dry := NewDryRun(base, zerolog.New(&buf))

	require.NoError(t, dry.Copy("meeting-23.org", "meeting-10.org"))

	// The planned name is visible through the wrapper only
	assert.True(t, dry.Exists("meeting-10.org"))
	assert.False(t, base.Exists("meeting-10.org"))
	assert.Empty(t, base.Copies())

	// A second plan for the same name collides
	err := dry.Copy("meeting-23.org", "meeting-10.org")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))

	// Unknown sources are rejected
	err = dry.Copy("ghost.org", "ghost-1.org")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	assert.Equal(t, []CopyRecord{{Src: "meeting-23.org", Dst: "meeting-10.org"}}, dry.Planned())
	assert.Contains(t, buf.String(), "Would copy")
	assert.Equal(t, "meeting-10.org", dry.Filename("notes/meeting-10.org"))
	assert.Equal(t, "notes", dry.Parent("notes/meeting-10.org"))
}
