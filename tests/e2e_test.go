package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestGenerateEndToEnd runs the real binary against a scratch configuration
// directory and asserts the side effects on a scratch home directory.
func TestGenerateEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	projectRoot := wd
	if strings.HasSuffix(wd, "tests") {
		projectRoot = filepath.Dir(wd)
	}

	// Scratch config dir with a resource root.
	cfgDir := t.TempDir()
	filesDir := filepath.Join(cfgDir, "files")
	if err := os.MkdirAll(filepath.Join(filesDir, "home"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(filesDir, "home", "hello.txt"), []byte("Hello, world!"), 0644); err != nil {
		t.Fatal(err)
	}

	config := `
resources:
  - name: hello
    type: symlink
    params:
      source: home/hello.txt
      target: hello.txt
      force: true
`
	cfgFile := filepath.Join(cfgDir, "hearth.yaml")
	if err := os.WriteFile(cfgFile, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	// Scratch home directory.
	homeDir := t.TempDir()

	cmd := exec.Command("go", "run", ".", "generate", "-c", cfgFile)
	cmd.Dir = projectRoot
	cmd.Env = append(os.Environ(), "HOME="+homeDir)

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("hearth generate failed: %v\nOutput:\n%s", err, string(output))
	}

	target := filepath.Join(homeDir, "hello.txt")
	info, err := os.Lstat(target)
	if err != nil {
		t.Fatalf("expected symlink at %s: %v", target, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("%s exists but is not a symlink", target)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "Hello, world!" {
		t.Fatalf("unexpected content through symlink: %q", string(content))
	}

	// A second run must be a clean no-op.
	cmd = exec.Command("go", "run", ".", "generate", "-c", cfgFile)
	cmd.Dir = projectRoot
	cmd.Env = append(os.Environ(), "HOME="+homeDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("second hearth generate failed: %v\nOutput:\n%s", err, string(output))
	}
}
