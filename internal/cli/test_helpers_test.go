package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeGitStub creates a git stub whose behavior is driven by GIT_STUB_*
// environment variables, and prepends it to PATH.
func writeGitStub(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "git")
	var script string

	if runtime.GOOS == "windows" {
		path += ".cmd"
		script = `@echo off
if not "%GIT_STUB_LOG%"=="" echo %* >> "%GIT_STUB_LOG%"
if "%1"=="rev-parse" (
  if "%2"=="--is-inside-work-tree" ( echo true & exit /b 0 )
  if "%2"=="--abbrev-ref" ( echo origin/main & exit /b 0 )
  echo abcdef1234567890
  exit /b 0
)
if "%1"=="log" ( echo %GIT_STUB_MESSAGE% & exit /b 0 )
if "%1"=="config" (
  if "%2"=="--get" ( echo https://example.com/org/repo.git & exit /b 0 )
  exit /b 0
)
if "%1"=="status" ( echo %GIT_STUB_STATUS% & exit /b 0 )
if "%1"=="push" (
  if "%GIT_STUB_PUSH_FAIL%"=="1" ( echo rejected 1>&2 & exit /b 1 )
  exit /b 0
)
exit /b 0
`
	} else {
		script = `#!/bin/sh
cmd="$1"; shift
[ -n "$GIT_STUB_LOG" ] && echo "$cmd $*" >> "$GIT_STUB_LOG"
case "$cmd" in
  rev-parse)
    case "$1" in
      --is-inside-work-tree) echo "true"; exit 0 ;;
      --abbrev-ref) echo "origin/main"; exit 0 ;;
    esac
    echo "abcdef1234567890"
    exit 0 ;;
  log)
    printf '%s\n' "$GIT_STUB_MESSAGE"; exit 0 ;;
  config)
    if [ "$1" = "--get" ]; then echo "https://example.com/org/repo.git"; fi
    exit 0 ;;
  status)
    printf '%s\n' "$GIT_STUB_STATUS"; exit 0 ;;
  push)
    if [ "$GIT_STUB_PUSH_FAIL" = "1" ]; then echo "rejected" 1>&2; exit 1; fi
    exit 0 ;;
esac
exit 0
`
	}

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write git stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	// Deterministic stub behavior unless a test overrides these.
	t.Setenv("GIT_STUB_MESSAGE", "feat: add endpoint")
	t.Setenv("GIT_STUB_STATUS", "")
	t.Setenv("GIT_STUB_PUSH_FAIL", "")
	t.Setenv("GIT_STUB_LOG", "")
}

// workdirWithVersion switches to a temp directory holding a version file.
func workdirWithVersion(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		if err := os.WriteFile(filepath.Join(dir, "version.properties"), []byte(content), 0o644); err != nil {
			t.Fatalf("write version file: %v", err)
		}
	}
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}
