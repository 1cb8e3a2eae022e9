package gitcli

import (
	"net/url"
	"os"
	"strings"

	"github.com/halloy/verbump/internal/apperr"
)

// Credentials is a username/password (or token) pair used for pushing.
type Credentials struct {
	Username string
	Password string
}

// Empty reports whether no credential material is present.
func (c Credentials) Empty() bool { return c.Username == "" && c.Password == "" }

// ResolveCredentials reads push credentials from the environment.
// VERBUMP_GIT_USERNAME/VERBUMP_GIT_PASSWORD take precedence; otherwise the
// CI credential-binding convention <ID>_USR / <ID>_PSW is used, where ID is
// the configured credentials id upper-snaked (e.g. "git-credentials" →
// GIT_CREDENTIALS_USR).
func ResolveCredentials(credentialsID string) Credentials {
	if u, p := os.Getenv("VERBUMP_GIT_USERNAME"), os.Getenv("VERBUMP_GIT_PASSWORD"); u != "" || p != "" {
		return Credentials{Username: u, Password: p}
	}
	prefix := envName(credentialsID)
	return Credentials{
		Username: os.Getenv(prefix + "_USR"),
		Password: os.Getenv(prefix + "_PSW"),
	}
}

func envName(id string) string {
	s := strings.ToUpper(id)
	s = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(s)
	return s
}

// WithAuth embeds creds into an http(s) remote URL as userinfo. Other
// schemes (ssh, git) carry their own auth and are returned unchanged, as is
// any URL when creds are empty.
func WithAuth(remoteURL string, creds Credentials) (string, error) {
	if creds.Empty() {
		return remoteURL, nil
	}
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", apperr.Wrap("gitcli.WithAuth", apperr.InvalidInput, err, "remote url %q", remoteURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return remoteURL, nil
	}
	if creds.Password != "" {
		u.User = url.UserPassword(creds.Username, creds.Password)
	} else {
		u.User = url.User(creds.Username)
	}
	return u.String(), nil
}
