package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileExists checks if a file or directory exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir reports whether path is an existing directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadJSON reads a JSON file and unmarshals it into v
func ReadJSON(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(v)
}

// ReadYAML reads a YAML file and unmarshals it into v
func ReadYAML(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return yaml.NewDecoder(file).Decode(v)
}

// ReadDataFile picks the decoder from the file extension
func ReadDataFile(path string, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(path, v)
	case ".yaml", ".yml":
		return ReadYAML(path, v)
	default:
		return fmt.Errorf("unsupported data file %q", path)
	}
}

// FindFiles walks dir and returns the files matching any of the comma
// separated patterns, sorted by path
func FindFiles(dir, pattern string) ([]string, error) {
	var files []string
	patterns := strings.Split(pattern, ",")

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		for _, p := range patterns {
			matched, err := filepath.Match(strings.TrimSpace(p), info.Name())
			if err != nil {
				return err
			}
			if matched {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
