package workspace

import "testing"

func TestTopologyFromFolderCount(t *testing.T) {
	tests := []struct {
		name    string
		folders []Folder
		want    Topology
	}{
		{name: "no folders", folders: nil, want: TopologyEmpty},
		{name: "one folder", folders: []Folder{{Name: "a", Path: "/a"}}, want: TopologySingleFolder},
		{name: "two folders", folders: []Folder{{Name: "a", Path: "/a"}, {Name: "b", Path: "/b"}}, want: TopologyMultiRoot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.folders...)
			if got := s.Topology(); got != tt.want {
				t.Fatalf("Topology() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetFoldersFiresFolderListeners(t *testing.T) {
	s := NewSession(Folder{Name: "a", Path: "/a"})

	var got [][]Folder
	s.OnFoldersChange(func(fs []Folder) {
		got = append(got, fs)
	})

	s.SetFolders([]Folder{{Name: "a", Path: "/a"}, {Name: "b", Path: "/b"}})
	if len(got) != 1 {
		t.Fatalf("folder listener fired %d times, want 1", len(got))
	}
	if len(got[0]) != 2 {
		t.Fatalf("listener saw %d folders, want 2", len(got[0]))
	}
}

func TestTopologyListenerFiresOnlyOnKindChange(t *testing.T) {
	s := NewSession(Folder{Name: "a", Path: "/a"}, Folder{Name: "b", Path: "/b"})

	var seen []Topology
	s.OnTopologyChange(func(tp Topology) {
		seen = append(seen, tp)
	})

	// multi-root -> multi-root: no topology notification.
	s.SetFolders([]Folder{{Name: "a", Path: "/a"}, {Name: "c", Path: "/c"}})
	if len(seen) != 0 {
		t.Fatalf("topology listener fired %d times for same-kind change, want 0", len(seen))
	}

	// multi-root -> empty: exactly one notification.
	s.SetFolders(nil)
	if len(seen) != 1 || seen[0] != TopologyEmpty {
		t.Fatalf("seen = %v, want [empty]", seen)
	}
}

func TestListenersFireInRegistrationOrder(t *testing.T) {
	s := NewSession()

	var order []string
	s.OnFoldersChange(func([]Folder) { order = append(order, "first") })
	s.OnFoldersChange(func([]Folder) { order = append(order, "second") })
	s.OnFoldersChange(func([]Folder) { order = append(order, "third") })

	s.SetFolders([]Folder{{Name: "a", Path: "/a"}})
	want := "first,second,third"
	joined := order[0] + "," + order[1] + "," + order[2]
	if len(order) != 3 || joined != want {
		t.Fatalf("fire order = %v, want %s", order, want)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := NewSession()

	fired := 0
	sub := s.OnFoldersChange(func([]Folder) { fired++ })
	sub.Cancel()
	sub.Cancel()

	s.SetFolders([]Folder{{Name: "a", Path: "/a"}})
	if fired != 0 {
		t.Fatalf("cancelled listener fired %d times", fired)
	}
}

func TestFoldersFromPaths(t *testing.T) {
	folders := FoldersFromPaths([]string{"/home/dev/project", "", "  ", "relative/dir"})
	if len(folders) != 2 {
		t.Fatalf("got %d folders, want 2", len(folders))
	}
	if folders[0].Name != "project" {
		t.Fatalf("folders[0].Name = %q, want %q", folders[0].Name, "project")
	}
	if folders[1].Name != "dir" {
		t.Fatalf("folders[1].Name = %q, want %q", folders[1].Name, "dir")
	}
}
