package db

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/gigifypro-backend/internal/domain/badges"
)

//go:embed badges.yaml
var badgeCatalogYAML []byte

type badgeCatalog struct {
	Badges []badges.Badge `yaml:"badges"`
}

// BadgeCatalog returns the built-in badge definitions.
func BadgeCatalog() ([]badges.Badge, error) {
	return parseBadgeCatalog(badgeCatalogYAML)
}

func parseBadgeCatalog(raw []byte) ([]badges.Badge, error) {
	var cat badgeCatalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse badge catalog: %w", err)
	}
	seen := make(map[badges.Type]bool, len(cat.Badges))
	for _, b := range cat.Badges {
		if b.Type == "" || b.Name == "" {
			return nil, fmt.Errorf("badge catalog entry missing type or name")
		}
		if seen[b.Type] {
			return nil, fmt.Errorf("duplicate badge type %q", b.Type)
		}
		seen[b.Type] = true
	}
	return cat.Badges, nil
}
