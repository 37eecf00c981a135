// Package workspace models the shape of the current editing session: which
// root folders are open and how that set changes over time.
package workspace

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Topology describes how many root folders the current session has open.
type Topology int

const (
	TopologyEmpty Topology = iota
	TopologySingleFolder
	TopologyMultiRoot
)

func (t Topology) String() string {
	switch t {
	case TopologySingleFolder:
		return "single-folder"
	case TopologyMultiRoot:
		return "multi-root"
	default:
		return "empty"
	}
}

// Folder is one root folder of the workspace.
type Folder struct {
	Name string
	Path string
}

// Subscription is a registered change listener. Cancel releases the
// listener and is safe to call more than once.
type Subscription interface {
	Cancel()
}

// Context exposes the current workspace shape and change notifications.
// Callbacks fire synchronously, in registration order, on the goroutine
// that mutates the workspace.
type Context interface {
	Topology() Topology
	Folders() []Folder
	OnTopologyChange(fn func(Topology)) Subscription
	OnFoldersChange(fn func([]Folder)) Subscription
}

// Session is an in-memory Context seeded from a folder list.
type Session struct {
	mu           sync.Mutex
	folders      []Folder
	nextID       int
	topologySubs map[int]func(Topology)
	folderSubs   map[int]func([]Folder)
}

// NewSession returns a Session rooted at the given folders.
func NewSession(folders ...Folder) *Session {
	return &Session{
		folders:      append([]Folder(nil), folders...),
		topologySubs: make(map[int]func(Topology)),
		folderSubs:   make(map[int]func([]Folder)),
	}
}

// FoldersFromPaths builds folder descriptors from filesystem paths. The
// folder name defaults to the path's base segment.
func FoldersFromPaths(paths []string) []Folder {
	out := make([]Folder, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Folder{Name: filepath.Base(p), Path: p})
	}
	return out
}

func topologyFor(count int) Topology {
	switch {
	case count == 0:
		return TopologyEmpty
	case count == 1:
		return TopologySingleFolder
	default:
		return TopologyMultiRoot
	}
}

func (s *Session) Topology() Topology {
	s.mu.Lock()
	defer s.mu.Unlock()
	return topologyFor(len(s.folders))
}

func (s *Session) Folders() []Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Folder(nil), s.folders...)
}

// SetFolders replaces the folder list. Folder listeners fire on every
// call that changes the list; topology listeners fire only when the
// topology kind changes.
func (s *Session) SetFolders(folders []Folder) {
	s.mu.Lock()
	before := topologyFor(len(s.folders))
	s.folders = append([]Folder(nil), folders...)
	after := topologyFor(len(s.folders))
	snapshot := append([]Folder(nil), s.folders...)
	folderFns := s.orderedFolderSubs()
	var topologyFns []func(Topology)
	if before != after {
		topologyFns = s.orderedTopologySubs()
	}
	s.mu.Unlock()

	for _, fn := range folderFns {
		fn(snapshot)
	}
	for _, fn := range topologyFns {
		fn(after)
	}
}

func (s *Session) OnTopologyChange(fn func(Topology)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.topologySubs[id] = fn
	return &handle{release: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.topologySubs, id)
	}}
}

func (s *Session) OnFoldersChange(fn func([]Folder)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.folderSubs[id] = fn
	return &handle{release: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.folderSubs, id)
	}}
}

// orderedTopologySubs returns listeners in registration order. Callers
// must hold s.mu.
func (s *Session) orderedTopologySubs() []func(Topology) {
	ids := make([]int, 0, len(s.topologySubs))
	for id := range s.topologySubs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(Topology), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.topologySubs[id])
	}
	return out
}

func (s *Session) orderedFolderSubs() []func([]Folder) {
	ids := make([]int, 0, len(s.folderSubs))
	for id := range s.folderSubs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func([]Folder), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.folderSubs[id])
	}
	return out
}

type handle struct {
	mu      sync.Mutex
	release func()
}

func (h *handle) Cancel() {
	h.mu.Lock()
	release := h.release
	h.release = nil
	h.mu.Unlock()
	if release != nil {
		release()
	}
}
