package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
)

func TestLoadPriority(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{
		"images/wave.jpg":  {Data: []byte("base")},
		"images/hover.jpg": {Data: []byte("base-hover")},
	})
	m.AddRoot(fstest.MapFS{
		"images/wave.jpg": {Data: []byte("override")},
	})

	tests := []struct {
		name string
		path string
		want string
	}{
		{"later root wins", "images/wave.jpg", "override"},
		{"falls back to earlier root", "images/hover.jpg", "base-hover"},
		{"path is cleaned", "images/../images/hover.jpg", "base-hover"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := m.Load(tt.path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %q, want %q", data, tt.want)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{})

	if _, err := m.Load("images/none.jpg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadInvalidPath(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{})

	if _, err := m.Load("../etc/passwd"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected invalid path error, got %v", err)
	}
}

func TestLoadCaches(t *testing.T) {
	fsys := fstest.MapFS{"a.png": {Data: []byte("one")}}
	m := NewManager()
	m.AddRoot(fsys)

	if _, err := m.Load("a.png"); err != nil {
		t.Fatal(err)
	}
	fsys["a.png"] = &fstest.MapFile{Data: []byte("two")}

	data, err := m.Load("a.png")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one" {
		t.Errorf("expected cached data, got %q", data)
	}

	m.Close()
	if _, err := m.Load("a.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Close, got %v", err)
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "images", "wave.jpg"), []byte("jpg"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	if data, err := m.Load("images/wave.jpg"); err != nil || string(data) != "jpg" {
		t.Errorf("Load = %q, %v", data, err)
	}

	if err := m.AddDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
	if err := m.AddDir(filepath.Join(dir, "images", "wave.jpg")); err == nil {
		t.Error("expected error for file passed as dir")
	}
}

func TestConcurrentLoad(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{
		"a": {Data: []byte("a")},
		"b": {Data: []byte("b")},
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "a"
			if i%2 == 1 {
				name = "b"
			}
			if data, err := m.Load(name); err != nil || string(data) != name {
				t.Errorf("Load(%s) = %q, %v", name, data, err)
			}
		}(i)
	}
	wg.Wait()
}
