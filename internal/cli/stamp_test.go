package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/halloy/verbump/internal/apperr"
)

func writeMvnStub(t *testing.T, fail bool) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mvn")
	logPath := filepath.Join(dir, "mvn.log")
	var script string
	if runtime.GOOS == "windows" {
		path += ".cmd"
		if fail {
			script = "@echo off\r\necho BUILD FAILURE 1>&2\r\nexit /b 1\r\n"
		} else {
			script = "@echo off\r\necho %* >> \"" + logPath + "\"\r\nexit /b 0\r\n"
		}
	} else {
		if fail {
			script = "#!/bin/sh\necho 'BUILD FAILURE' 1>&2\nexit 1\n"
		} else {
			script = "#!/bin/sh\necho \"$*\" >> \"" + logPath + "\"\nexit 0\n"
		}
	}
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write mvn stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logPath
}

func TestStampInvokesVersionsPlugin(t *testing.T) {
	workdirWithVersion(t, "")
	logPath := writeMvnStub(t, false)

	out, _, err := runCmd(t, "stamp", "--version", "1.2.3-45-abcdef1", "--log-format", "json")
	if err != nil {
		t.Fatalf("stamp: %v", err)
	}
	if strings.TrimSpace(out) != "stamped 1.2.3-45-abcdef1" {
		t.Fatalf("stdout: got %q", out)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read mvn log: %v", err)
	}
	if !strings.Contains(string(b), "-B versions:set -DnewVersion=1.2.3-45-abcdef1 versions:commit") {
		t.Fatalf("mvn args:\n%s", string(b))
	}
}

func TestStampFailureSurfacesExternal(t *testing.T) {
	workdirWithVersion(t, "")
	writeMvnStub(t, true)

	_, _, err := runCmd(t, "stamp", "--version", "1.0.0", "--log-format", "json")
	if !apperr.IsKind(err, apperr.External) {
		t.Fatalf("want kind=External, got %v", err)
	}
}

func TestStampRequiresVersion(t *testing.T) {
	workdirWithVersion(t, "")
	_, _, err := runCmd(t, "stamp")
	if err == nil {
		t.Fatal("version flag is required")
	}
}
