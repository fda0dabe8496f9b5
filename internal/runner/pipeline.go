// internal/runner/pipeline.go
package runner

import (
	"os"
	"path/filepath"
	"strings"
)

// Plan describes how to run a source file: an optional compile phase
// followed by a run phase. Compile-then-run plans build into a reserved
// temporary executable that the caller removes with Cleanup.
type Plan struct {
	Compile    []string // Compile argv; empty when the file runs directly
	Run        []string
	CleanupExe string // Temporary executable to remove afterwards, if any
}

// NeedsCompile reports whether the plan has a compile phase.
func (p Plan) NeedsCompile() bool {
	return len(p.Compile) > 0
}

// Cleanup removes the temporary executable, if any.
func (p Plan) Cleanup() {
	if p.CleanupExe != "" {
		os.Remove(p.CleanupExe)
	}
}

// PlanFor returns the pipeline for path's extension. The second return is
// false when the extension has no registered pipeline. Building a
// compile-then-run plan fails when no temporary path for the executable can
// be reserved.
func PlanFor(path string) (Plan, bool, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".py":
		return Plan{Run: []string{"python3", path}}, true, nil
	case ".go":
		return Plan{Run: []string{"go", "run", path}}, true, nil
	case ".c", ".cpp", ".cc", ".cxx", ".rs":
		exe, err := tempExePath()
		if err != nil {
			return Plan{}, true, err
		}
		var compile []string
		switch ext {
		case ".c":
			compile = []string{"gcc", path, "-o", exe}
		case ".rs":
			compile = []string{"rustc", path, "-o", exe}
		default:
			compile = []string{"g++", path, "-o", exe}
		}
		return Plan{Compile: compile, Run: []string{exe}, CleanupExe: exe}, true, nil
	}
	return Plan{}, false, nil
}

// tempExePath reserves a unique path for a compiled executable. Only the
// name is kept: the compiler must create the file itself so it carries
// execute permissions.
func tempExePath() (string, error) {
	f, err := os.CreateTemp("", "rawide_*")
	if err != nil {
		return "", err
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return name, nil
}
