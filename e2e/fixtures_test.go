//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes a catalog file with one item per name into the workspace
func (tf *TUITestFramework) WriteCatalog(name string, items ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "[[items]]\nname = %q\ncategory = \"Test\"\nprice = %d.0\n\n", item, i+1)
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ConfigPath is where the app looks for its config inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, ".config", "searchbar", "config.toml")
}
