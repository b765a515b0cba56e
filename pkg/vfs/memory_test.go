package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	m := NewMemory("hello-10-23.org", "meeting-23.org")

	assert.True(t, m.Exists("meeting-23.org"))
	assert.False(t, m.Exists("meeting-10.org"))

	// Copy always succeeds, even for an unknown source
	assert.NoError(t, m.Copy("meeting-23.org", "meeting-10.org"))
	assert.NoError(t, m.Copy("ghost.org", "ghost-1.org"))

	assert.True(t, m.Exists("meeting-10.org"))
	assert.Equal(t, []string{"ghost-1.org", "hello-10-23.org", "meeting-10.org", "meeting-23.org"}, m.Files())
	assert.Equal(t, []CopyRecord{
		{Src: "meeting-23.org", Dst: "meeting-10.org"},
		{Src: "ghost.org", Dst: "ghost-1.org"},
	}, m.Copies())
}

func TestMemoryPathHelpers(t *testing.T) {
	m := NewMemory()

	tests := []struct {
		path     string
		filename string
		parent   string
	}{
		{"/foo/bar/hello.txt", "hello.txt", "/foo/bar"},
		{"hello.txt", "hello.txt", ""},
		{"/hello.txt", "hello.txt", ""},
		{"dir/", "", "dir"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.filename, m.Filename(tt.path))
			assert.Equal(t, tt.parent, m.Parent(tt.path))
		})
	}
}
