package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes how much data to generate. Profiles can be loaded
// from a YAML file so demo environments are reproducible.
type Profile struct {
	Users               int `yaml:"users"`
	SkillsPerUser       int `yaml:"skills_per_user"`
	Exchanges           int `yaml:"exchanges"`
	MessagesPerExchange int `yaml:"messages_per_exchange"`
	Groups              int `yaml:"groups"`
}

// DefaultProfile is a small data set suitable for local development.
func DefaultProfile() Profile {
	return Profile{
		Users:               25,
		SkillsPerUser:       3,
		Exchanges:           60,
		MessagesPerExchange: 4,
		Groups:              5,
	}
}

// LoadProfile reads a seed profile from a YAML file. Zero-valued
// fields fall back to the defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading seed profile: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parsing seed profile: %w", err)
	}

	if p.Users <= 0 {
		p.Users = DefaultProfile().Users
	}
	if p.SkillsPerUser <= 0 {
		p.SkillsPerUser = DefaultProfile().SkillsPerUser
	}
	return p, nil
}
