package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML GameConfig
	if err := yaml.Unmarshal(defaultGalaxyYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != Default() {
		t.Errorf("embedded defaults = %+v\nhardcoded defaults = %+v", fromYAML, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	custom := []byte("world:\n  width: 800\n  height: 600\nship:\n  speed: 250\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("world = %+v, want 800x600", cfg.World)
	}
	if cfg.Ship.Speed != 250 {
		t.Errorf("ship speed = %v, want 250", cfg.Ship.Speed)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestApplyDifficulty(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyDifficulty(&easy, DifficultyEasy)
	if easy.Spawner.DebrisInterval <= base.Spawner.DebrisInterval {
		t.Error("Easy should drop debris less often")
	}
	if easy.Spawner.FallSpeed >= base.Spawner.FallSpeed {
		t.Error("Easy should slow the drops down")
	}

	hard := Default()
	ApplyDifficulty(&hard, DifficultyHard)
	if hard.Spawner.DebrisInterval >= base.Spawner.DebrisInterval {
		t.Error("Hard should drop debris more often")
	}
	if hard.Spawner.DebrisDamage <= base.Spawner.DebrisDamage {
		t.Error("Hard should hit harder")
	}

	normal := Default()
	ApplyDifficulty(&normal, DifficultyNormal)
	if normal != base {
		t.Error("Normal should leave the config untouched")
	}

	unknown := Default()
	ApplyDifficulty(&unknown, "Nightmare")
	if unknown != base {
		t.Error("unknown difficulty should leave the config untouched")
	}
}
