package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// tsk-hello prints the environment it receives.
	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvDataDir, EnvDataDir, EnvVerbose, EnvVerbose)

	helloPath := filepath.Join(tempDir, "tsk-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write tsk-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile tsk-hello: %v", err)
	}

	tskPath := filepath.Join(tempDir, "tsk")
	build = exec.Command("go", "build", "-o", tskPath, "../tsk")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile tsk binary: %v", err)
	}

	expectedDataDir := filepath.Join(tempDir, "data")
	tsk := exec.Command(tskPath, "-data-dir", expectedDataDir, "-verbose", "hello", "world")
	tsk.Dir = tempDir
	tsk.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	tsk.Stdout = &stdout
	tsk.Stderr = &stderr
	if err := tsk.Run(); err != nil {
		t.Fatalf("tsk command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvDataDir + "=" + expectedDataDir,
		EnvVerbose + "=true",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}
