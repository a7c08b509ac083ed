package syllabus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/studycoach/studycoach/internal/syllabus"
)

func TestDefaultCatalog(t *testing.T) {
	cat := syllabus.Default()

	if cat.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	topics, ok := cat.Topics(syllabus.DefaultModule)
	if !ok {
		t.Fatalf("default module %q missing", syllabus.DefaultModule)
	}
	if len(topics) == 0 {
		t.Fatal("default module has no topics")
	}

	// Every topic in the default module carries practice tasks except the
	// API overview topic.
	withTasks := 0
	for _, topic := range topics {
		if len(cat.Tasks(topic)) > 0 {
			withTasks++
		}
	}
	if withTasks < len(topics)-1 {
		t.Errorf("expected tasks for most topics, got %d of %d", withTasks, len(topics))
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	cat := syllabus.Default()

	for _, name := range []string{"Generative AI", "GENERATIVE AI", "  generative ai  "} {
		if _, ok := cat.Topics(name); !ok {
			t.Errorf("lookup failed for %q", name)
		}
	}

	if _, ok := cat.Topics("no such module"); ok {
		t.Error("unknown module should not resolve")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"modules": {"Go Basics": ["Syntax", "Concurrency"]},
		"practice_tasks": {"Concurrency": ["Write a worker pool."]}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := syllabus.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	topics, ok := cat.Topics("go basics")
	if !ok || len(topics) != 2 {
		t.Fatalf("loaded module not found or wrong topics: %v", topics)
	}
	if tasks := cat.Tasks("concurrency"); len(tasks) != 1 {
		t.Errorf("expected 1 task for concurrency, got %d", len(tasks))
	}

	// The file replaces the built-in catalog.
	if _, ok := cat.Topics(syllabus.DefaultModule); ok {
		t.Error("file catalog should not contain the built-in module")
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := syllabus.LoadFile("/does/not/exist.json"); err == nil {
		t.Error("missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := syllabus.LoadFile(path); err == nil {
		t.Error("malformed JSON should error")
	}
}
