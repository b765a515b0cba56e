package vfs

import (
	"sort"
)

// CopyRecord is one copy performed against a Memory filesystem.
type CopyRecord struct {
	Src string
	Dst string
}

// Memory is an in-memory VFS backed by a set of known path strings.
// Copy always succeeds and registers dst. It is not safe for concurrent use.
type Memory struct {
	files  map[string]struct{}
	copies []CopyRecord
}

// NewMemory creates a Memory filesystem that already knows files.
func NewMemory(files ...string) *Memory {
	m := &Memory{files: make(map[string]struct{}, len(files))}
	m.Add(files...)
	return m
}

// Add registers paths as existing.
func (m *Memory) Add(paths ...string) {
	for _, p := range paths {
		m.files[p] = struct{}{}
	}
}

func (m *Memory) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *Memory) Copy(src, dst string) error {
	m.files[dst] = struct{}{}
	m.copies = append(m.copies, CopyRecord{Src: src, Dst: dst})
	return nil
}

func (m *Memory) Filename(path string) string { return slashFilename(path) }
func (m *Memory) Parent(path string) string   { return slashParent(path) }

// Files returns a sorted snapshot of every known path.
func (m *Memory) Files() []string {
	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Copies returns the copies performed so far, in order.
func (m *Memory) Copies() []CopyRecord {
	return append([]CopyRecord(nil), m.copies...)
}
