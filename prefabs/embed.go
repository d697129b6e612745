package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

var (
	diskMu  sync.RWMutex
	diskDir = "prefabs"
)

// SetDiskDir changes the directory checked for overrides before the embedded
// copies. An empty dir disables disk overrides.
func SetDiskDir(dir string) {
	diskMu.Lock()
	defer diskMu.Unlock()
	diskDir = dir
}

// DiskDir returns the override directory.
func DiskDir() string {
	diskMu.RLock()
	defer diskMu.RUnlock()
	return diskDir
}

// Load returns the on-disk prefab if present, else the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if path, ok := diskPrefabPath(clean); ok {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	path, ok := diskPrefabPath(cleanPrefabPath(name))
	if !ok {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) (string, bool) {
	dir := DiskDir()
	if dir == "" || clean == "" {
		return "", false
	}
	return filepath.Join(dir, filepath.FromSlash(clean)), true
}
