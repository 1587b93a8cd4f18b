package main

import (
	"errors"
	"os"
	"path"
	"reflect"
	"testing"
)

func makeConfigFile(t *testing.T, contents string) string {
	filePath := path.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(filePath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return filePath
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(makeConfigFile(t, `
listen: "localhost:9000"
allowed-origins:
  - "http://localhost:3000"
scheme-file: "si.yaml"
debug: true
`))
	if err != nil {
		t.Fatal(err)
	}

	if config.Listen != "localhost:9000" {
		t.Fatalf("expected listen localhost:9000 got %q", config.Listen)
	}
	if !reflect.DeepEqual(config.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Fatalf("unexpected origins %v", config.AllowedOrigins)
	}
	if config.SchemeFile != "si.yaml" {
		t.Fatalf("expected scheme-file si.yaml got %q", config.SchemeFile)
	}
	if !config.Debug {
		t.Fatal("expected debug enabled")
	}
}

func TestLoadConfigDefaultOrigins(t *testing.T) {
	config, err := LoadConfig(makeConfigFile(t, `listen: "localhost:9000"`))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(config.AllowedOrigins, []string{"*"}) {
		t.Fatalf("expected any origin got %v", config.AllowedOrigins)
	}
}

func TestLoadConfigMissingListen(t *testing.T) {
	_, err := LoadConfig(makeConfigFile(t, `debug: true`))
	if !errors.Is(err, ErrListenMissing) {
		t.Fatalf("expected ErrListenMissing got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(path.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	if _, err := LoadConfig(makeConfigFile(t, "listen: [")); err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}
