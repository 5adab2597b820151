// Package config loads the herbst3 configuration from
// $XDG_CONFIG_HOME/herbst3/config.yaml and HERBST3_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
	SourceEnv     SourceKind = "env"
)

type Source struct {
	Kind   SourceKind
	Name   string // env variable for SourceEnv
	File   string
	Line   int
	Column int
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML-path -> last writer source
	File    string            // loaded file, empty when none existed
}

// Environment variables that override the file.
const (
	EnvTransport    = "HERBST3_TRANSPORT"
	EnvHerbstclient = "HERBST3_HERBSTCLIENT"
	EnvLogLevel     = "HERBST3_LOG"
)

func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "herbst3", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "herbst3", "config.yaml"), nil
}

// Load reads the configuration from path, or from DefaultConfigPath when path
// is empty, and applies the environment on top of it.
func Load(path string) (*LoadResult, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return LoadFromPath(path, os.Getenv)
}

// LoadFromPath loads path (a missing file means defaults) and applies the
// variables returned by getenv. A nil getenv ignores the environment.
func LoadFromPath(path string, getenv func(string) string) (*LoadResult, error) {
	raw := RawConfig{}
	sources := map[string]Source{}
	res := &LoadResult{Sources: sources}

	if exists, err := pathExists(path); err != nil {
		return nil, err
	} else if exists {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if err := decodeStrictYAML(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		for key, src := range collectSources(&doc, path) {
			sources[key] = src
		}
		res.File = path
	}

	if getenv != nil {
		applyEnv(&raw, sources, getenv)
	}

	cfg, err := BuildEffectiveConfig(raw)
	if err != nil {
		return nil, attachSourceContext(err, sources)
	}
	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, sources)
	}
	res.Config = cfg
	return res, nil
}

func applyEnv(raw *RawConfig, sources map[string]Source, getenv func(string) string) {
	vars := []struct {
		name string
		path string
		dst  **string
	}{
		{EnvTransport, "transport", &raw.Transport},
		{EnvHerbstclient, "herbstclient", &raw.Herbstclient},
		{EnvLogLevel, "log_level", &raw.LogLevel},
	}
	for _, v := range vars {
		val := strings.TrimSpace(getenv(v.name))
		if val == "" {
			continue
		}
		*v.dst = &val
		sources[v.path] = Source{Kind: SourceEnv, Name: v.name}
	}
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	if doc == nil {
		return out
	}
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	collectSourcesRec(node, file, "", out)
	return out
}

func collectSourcesRec(node *yaml.Node, file string, prefix string, out map[string]Source) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		path := keyNode.Value
		if prefix != "" {
			path = prefix + "." + path
		}
		out[path] = Source{
			Kind:   SourceFile,
			File:   file,
			Line:   valNode.Line,
			Column: valNode.Column,
		}
		collectSourcesRec(valNode, file, path, out)
	}
}

func attachSourceContext(err error, sources map[string]Source) error {
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path == "" {
		return err
	}
	if src, ok := sources[verr.Path]; ok {
		verr.Source = src
	}
	return verr
}
