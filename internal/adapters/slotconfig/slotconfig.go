package slotconfig

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathangoncalves/MTGADraft/internal/domain"
	"github.com/jonathangoncalves/MTGADraft/internal/ports"
)

//go:embed data/special_land_slots.yaml
var defaultSlots []byte

// File is the special land slot configuration document.
type File struct {
	Slots []Slot `yaml:"slots"`
}

type Slot struct {
	Set  string `yaml:"set"`
	Rate Rate   `yaml:"rate"`
	// BasicTypePrefix keeps only the set's basics whose type line starts
	// with it.
	BasicTypePrefix string   `yaml:"basic_type_prefix"`
	Note            string   `yaml:"note"`
	Candidates      []string `yaml:"candidates"`
}

// Rate is a probability written either as a decimal ("0.5") or a fraction
// ("5/12").
type Rate float64

func (r *Rate) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: rate must be a scalar", n.Line)
	}
	v, err := parseRate(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*r = Rate(v)
	return nil
}

func parseRate(s string) (float64, error) {
	num, den, isFrac := strings.Cut(strings.TrimSpace(s), "/")
	if !isFrac {
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid rate %q", s)
		}
		return v, nil
	}
	a, errA := strconv.ParseFloat(strings.TrimSpace(num), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if errA != nil || errB != nil || b == 0 {
		return 0, fmt.Errorf("invalid rate %q", s)
	}
	return a / b, nil
}

// Default returns the built-in configuration.
func Default() (File, error) {
	return Parse(defaultSlots)
}

// Load reads the configuration at path, or the built-in one when path is
// empty.
func Load(path string) (File, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Parse(raw)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(raw []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("special_land_slots.yaml: %w", err)
	}
	for i, s := range f.Slots {
		if s.Set == "" {
			return File{}, fmt.Errorf("special_land_slots.yaml: slot %d: empty set", i)
		}
	}
	return f, nil
}

// Build assembles the land slot registry: a basic slot for every set known
// to the card store, and the special slots of f on top.
func Build(ctx context.Context, store ports.CardStore, f File) (*domain.Registry, error) {
	basics, err := store.BasicLands(ctx)
	if err != nil {
		return nil, fmt.Errorf("basic lands: %w", err)
	}

	defs := make([]domain.SpecialSlotDef, 0, len(f.Slots))
	for _, s := range f.Slots {
		setBasics := basics[s.Set]
		if s.BasicTypePrefix != "" {
			setBasics, err = filterByType(ctx, store, setBasics, s.BasicTypePrefix)
			if err != nil {
				return nil, fmt.Errorf("special slot %s: %w", s.Set, err)
			}
		}
		candidates := make([]domain.CardID, len(s.Candidates))
		for i, c := range s.Candidates {
			candidates[i] = domain.CardID(c)
		}
		defs = append(defs, domain.SpecialSlotDef{
			Set:        s.Set,
			Basics:     setBasics,
			Candidates: candidates,
			Rate:       float64(s.Rate),
			Note:       s.Note,
		})
	}
	return domain.NewRegistry(basics, defs)
}

func filterByType(ctx context.Context, store ports.CardStore, ids []domain.CardID, prefix string) ([]domain.CardID, error) {
	var out []domain.CardID
	for _, id := range ids {
		c, err := store.GetCard(ctx, id)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(c.Type, prefix) {
			out = append(out, id)
		}
	}
	return out, nil
}
