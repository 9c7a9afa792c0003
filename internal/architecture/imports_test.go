package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// layerRule bans imports by prefix for every file under dir. Entries starting
// with "/" are relative to the module path.
type layerRule struct {
	dir        string
	disallowed []string
}

var layerRules = []layerRule{
	{
		dir: "internal/scoring/",
		disallowed: []string{
			"/internal/data/", "/internal/services", "/internal/http", "/internal/app",
			"/internal/clients/", "/internal/observability",
			"gorm.io/", "github.com/gin-gonic/", "github.com/redis/",
		},
	},
	{
		dir:        "internal/domain/",
		disallowed: []string{"/internal/data/", "/internal/services", "/internal/http", "/internal/app", "/internal/scoring"},
	},
	{
		dir:        "internal/data/",
		disallowed: []string{"/internal/services", "/internal/http", "/internal/app", "/internal/clients/"},
	},
	{
		dir:        "internal/services/",
		disallowed: []string{"/internal/http", "/internal/app", "/internal/clients/", "github.com/gin-gonic/"},
	},
	{
		dir:        "internal/http/",
		disallowed: []string{"/internal/app", "/internal/clients/"},
	},
	{
		dir:        "internal/platform/",
		disallowed: []string{"/internal/"},
	},
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)
	fset := token.NewFileSet()

	type violation struct {
		file string
		imp  string
		rule string
	}
	var violations []violation

	walkErr := filepath.WalkDir(filepath.Join(root, "internal"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		disallowed := disallowedFor(modulePath, rel)
		if len(disallowed) == 0 {
			return nil
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			if spec == nil || spec.Path == nil {
				continue
			}
			imp, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}
			if ownPackage(modulePath, rel, imp) {
				continue
			}
			for _, bad := range disallowed {
				if strings.HasPrefix(imp, bad) {
					violations = append(violations, violation{file: rel, imp: imp, rule: bad})
					break
				}
			}
		}
		return nil
	})
	if walkErr != nil {
		t.Fatalf("walk internal/: %v", walkErr)
	}

	if len(violations) > 0 {
		var b strings.Builder
		b.WriteString("import boundary violations:\n")
		for _, v := range violations {
			fmt.Fprintf(&b, "- %s imports %q (disallowed: %q)\n", v.file, v.imp, v.rule)
		}
		t.Fatal(b.String())
	}
}

func TestScoringIsFlatPackage(t *testing.T) {
	root, _ := moduleRoot(t)
	entries, err := os.ReadDir(filepath.Join(root, "internal", "scoring"))
	if err != nil {
		t.Fatalf("read scoring dir: %v", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			t.Fatalf("internal/scoring must stay a single flat package, found dir %q", e.Name())
		}
	}
}

func disallowedFor(modulePath, rel string) []string {
	var out []string
	for _, r := range layerRules {
		if !strings.HasPrefix(rel, r.dir) {
			continue
		}
		for _, d := range r.disallowed {
			if strings.HasPrefix(d, "/") {
				d = modulePath + d
			}
			out = append(out, d)
		}
	}
	return out
}

// ownPackage reports whether imp lives under the importing file's directory.
func ownPackage(modulePath, rel, imp string) bool {
	dir := filepath.ToSlash(filepath.Dir(rel))
	return strings.HasPrefix(imp, modulePath+"/"+dir)
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := findModuleRoot(start)
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return root, modulePath
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found from %s", start)
		}
		dir = parent
	}
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		mp := strings.TrimSpace(strings.TrimPrefix(line, "module "))
		if mp == "" {
			return "", fmt.Errorf("empty module path in %s", goModPath)
		}
		return mp, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
