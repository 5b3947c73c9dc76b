package ui

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// FriendlyPath shortens a path below the user's home directory to start with "~".
func FriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	return friendlyPath(absPath, usr.HomeDir)
}

func friendlyPath(absPath, homeDir string) string {
	if homeDir == "" || homeDir == string(os.PathSeparator) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
