package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/bubble"
)

func TestLoadPresetDefault(t *testing.T) {
	p, err := loadPreset("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "vibrant-energy" {
		t.Errorf("Name = %q", p.Name)
	}
}

func TestLoadPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.yaml")
	data := []byte("name: mono\nscheme: {inactive: \"#FFFFFF\"}\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := loadPreset(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "mono" || p.Scheme.Inactive != bubble.Hex(0xFFFFFF) {
		t.Errorf("got %+v", p)
	}
	if _, err := loadPreset(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing preset")
	}
}

func TestEnvKeyReplacer(t *testing.T) {
	if got := envKeyReplacer.Replace("window.width"); got != "window_width" {
		t.Errorf("Replace = %q", got)
	}
	if got := envKeyReplacer.Replace("log-level"); got != "log_level" {
		t.Errorf("Replace = %q", got)
	}
}

func TestBundledScriptLoads(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("scripts", "cycle.json"))
	if err != nil {
		t.Fatal(err)
	}
	runner, err := bubble.LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if runner.Done() {
		t.Error("fresh runner should not be done")
	}
}
