package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"voidvanguard/sim"
)

// DefaultVolume is the sound volume of a fresh profile
const DefaultVolume = 64

// Profile is everything that survives between sessions
type Profile struct {
	Coins    int      `yaml:"coins"`
	Upgrades Upgrades `yaml:"upgrades"`
	Volume   int      `yaml:"volume"` // 0..128
	Best     int      `yaml:"best_score"`
}

// Upgrades holds the weapon upgrades bought in the shop
type Upgrades struct {
	DamageLevel int  `yaml:"damage_level"`
	DoubleShot  bool `yaml:"double_shot"`
	TripleShot  bool `yaml:"triple_shot"`
}

// New returns an empty profile with default settings
func New() *Profile {
	return &Profile{Volume: DefaultVolume}
}

// SimUpgrades converts the purchased upgrades for a simulation session
func (p *Profile) SimUpgrades() sim.Upgrades {
	return sim.Upgrades{
		DamageLevel: p.Upgrades.DamageLevel,
		DoubleShot:  p.Upgrades.DoubleShot,
		TripleShot:  p.Upgrades.TripleShot,
	}
}

// Store reads and writes a profile as YAML
type Store struct {
	path   string
	volume int
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path, volume: DefaultVolume}
}

// SetDefaultVolume sets the volume given to a profile that does not exist yet
func (s *Store) SetDefaultVolume(v int) {
	s.volume = min(max(v, 0), MaxVolume)
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load reads the profile. A missing file yields New().
func (s *Store) Load() (*Profile, error) {
	p := &Profile{Volume: s.volume}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", s.path, err)
	}
	p.clamp()
	return p, nil
}

// Save writes the profile through a temp file so a crash never leaves a torn file
func (s *Store) Save(p *Profile) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".profile-*.yaml")
	if err != nil {
		return fmt.Errorf("save profile %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("save profile %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save profile %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save profile %s: %w", s.path, err)
	}
	return nil
}

func (p *Profile) clamp() {
	if p.Coins < 0 {
		p.Coins = 0
	}
	if p.Upgrades.DamageLevel < 0 {
		p.Upgrades.DamageLevel = 0
	}
	if p.Volume < 0 {
		p.Volume = 0
	}
	if p.Volume > MaxVolume {
		p.Volume = MaxVolume
	}
}
