package trellis

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	os.Stderr = oldStderr
	return <-done
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewBox("child", 10, 10, ColorWhite)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		current := s.Root()
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewContainer(fmt.Sprintf("depth_%d", i))
			current.AddChild(child)
			current = child
		}
	})

	if !strings.Contains(output, "warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("many_children")
	s.Root().AddChild(parent)

	output := captureStderr(t, func() {
		for i := 0; i < debugMaxChildCount+1; i++ {
			parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i)))
		}
	})

	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_LayoutStats(t *testing.T) {
	s := NewScene()
	row := flexRow("row", 100, 10)
	a := NewBox("a", 10, 10, ColorWhite)
	row.AddChild(a)
	s.Root().AddChild(row)
	s.UpdateLayout()

	a.SetSize(20, 10)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	output := captureStderr(t, s.UpdateLayout)

	if !strings.Contains(output, "[trellis] layout:") {
		t.Errorf("expected layout stats, got: %q", output)
	}
	if !strings.Contains(output, "containers: 1") {
		t.Errorf("expected one container layout, got: %q", output)
	}

	idle := captureStderr(t, s.UpdateLayout)
	if idle != "" {
		t.Errorf("idle pass logged: %q", idle)
	}
}

func TestDumpLayout(t *testing.T) {
	s := NewScene()
	row := flexRow("row", 100, 10)
	row.AddChild(NewBox("a", 10, 10, ColorWhite))
	s.Root().AddChild(row)
	s.UpdateLayout()

	output := captureStderr(t, func() { DumpLayout(row) })
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), output)
	}
	if !strings.Contains(lines[0], `"row" flex(row)`) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], `  "a" item x=0 y=0 w=10 h=10`) {
		t.Errorf("line 1 = %q", lines[1])
	}
}
