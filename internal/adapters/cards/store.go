package cards

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jonathangoncalves/MTGADraft/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// FileStore serves the card database from two JSON documents on disk:
// the card list and the basic lands of every set. Paths ending in ".zst" are
// read through a zstd decoder. Files are loaded and validated on first use.
type FileStore struct {
	cardsPath      string
	basicLandsPath string

	once   sync.Once
	cards  map[domain.CardID]domain.Card
	basics map[string][]domain.CardID
	err    error
}

func NewFileStore(cardsPath, basicLandsPath string) *FileStore {
	return &FileStore{cardsPath: cardsPath, basicLandsPath: basicLandsPath}
}

func (s *FileStore) init() {
	var list []domain.Card
	if err := loadDocument(s.cardsPath, "schemas/cards.schema.json", &list); err != nil {
		s.err = fmt.Errorf("load cards: %w", err)
		return
	}
	s.cards = make(map[domain.CardID]domain.Card, len(list))
	for _, c := range list {
		s.cards[c.ID] = c
	}

	if err := loadDocument(s.basicLandsPath, "schemas/basic_lands.schema.json", &s.basics); err != nil {
		s.err = fmt.Errorf("load basic lands: %w", err)
		return
	}
	for set, ids := range s.basics {
		for _, id := range ids {
			if _, ok := s.cards[id]; !ok {
				s.err = fmt.Errorf("basic lands of %s: %w: %s", set, domain.ErrCardNotFound, id)
				return
			}
		}
	}
}

// Load forces the first load and reports its error.
func (s *FileStore) Load() error {
	s.once.Do(s.init)
	return s.err
}

func (s *FileStore) GetCard(_ context.Context, id domain.CardID) (domain.Card, error) {
	if err := s.Load(); err != nil {
		return domain.Card{}, err
	}
	c, ok := s.cards[id]
	if !ok {
		return domain.Card{}, fmt.Errorf("%w: %s", domain.ErrCardNotFound, id)
	}
	return c, nil
}

func (s *FileStore) BasicLands(_ context.Context) (map[string][]domain.CardID, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	out := make(map[string][]domain.CardID, len(s.basics))
	for set, ids := range s.basics {
		out[set] = append([]domain.CardID(nil), ids...)
	}
	return out, nil
}

func loadDocument(path, schemaName string, out any) error {
	raw, err := readFile(path)
	if err != nil {
		return err
	}

	schema, err := compileSchema(schemaName)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return raw, nil
	}

	dec, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer dec.Close()
	out, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func compileSchema(name string) (*jsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema %s: %w", name, err)
	}
	url := "mem://landslot/" + name
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	return c.Compile(url)
}
