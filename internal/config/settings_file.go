package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/vytor/kanaflash/internal/models"
)

// LoadSettingsFile returns base overridden by the keys set in the TOML file at
// path. A missing file, or an empty path, yields base unchanged.
//
//	kana-type = "katakana"
//	kana-category = "all"
//	play-order = "random"
//	play-interval = 5
//	required-correct-count = 2
func LoadSettingsFile(path string, base models.Settings) (models.Settings, error) {
	if path == "" {
		return base, nil
	}
	out := base
	md, err := toml.DecodeFile(path, &out)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("unknown keys in settings file %s: %v", path, undecoded)
	}
	return out, nil
}
