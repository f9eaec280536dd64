package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(name string) (string, string) {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[0:i], name[i+1:]
		}
	}
	return name, ""
}

func readJson5[T any](path string) (T, bool, error) {
	var out T
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, false, nil
		}
		return out, false, err
	}
	err = json5.Unmarshal(contents, &out)
	if err != nil {
		return out, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, true, nil
}

// reads a configuration file, `name` should come with a file extension.
// two files are consulted, where the later one takes priority:
// 1. <name>.<ext>
// 2. <name>.local.<ext>
func ReadConfig[T any](name string) (T, error) {
	dirname := filepath.Dir(name)
	prefix, ext := splitExt(filepath.Base(name))

	out, foundDefault, err := readJson5[T](name)
	if err != nil {
		return out, err
	}

	localPath := filepath.Join(dirname, fmt.Sprintf("%s.local.%s", prefix, ext))
	override, foundLocal, err := readJson5[T](localPath)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !foundDefault && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfig but it recursively goes up the filesystem until the root
// to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	dir, err := os.Getwd()
	if err != nil {
		return zero, err
	}
	for {
		out, err := ReadConfig[T](filepath.Join(dir, name))
		if err == nil {
			return out, nil
		}
		if !os.IsNotExist(err) {
			return zero, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return zero, os.ErrNotExist
		}
		dir = parent
	}
}
