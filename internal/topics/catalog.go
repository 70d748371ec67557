package topics

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var defaultData []byte

type Category struct {
	Name   string   `yaml:"name" json:"name"`
	Topics []string `yaml:"topics" json:"topics"`
}

type Catalog struct {
	categories []Category
	all        []string
}

// Picker is satisfied by *rand.Rand.
type Picker interface {
	IntN(n int) int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalogue. It panics if the embedded file is
// invalid, which the package tests guard against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultData)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse topics: %w", err)
	}

	c := &Catalog{}
	seen := map[string]bool{}
	for _, cat := range doc.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, errors.New("parse topics: category without a name")
		}
		kept := Category{Name: cat.Name}
		for _, t := range cat.Topics {
			t = strings.TrimSpace(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			kept.Topics = append(kept.Topics, t)
			c.all = append(c.all, t)
		}
		c.categories = append(c.categories, kept)
	}
	if len(c.all) == 0 {
		return nil, errors.New("parse topics: catalogue is empty")
	}
	return c, nil
}

func (c *Catalog) All() []string {
	return append([]string(nil), c.all...)
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Topics: append([]string(nil), cat.Topics...)}
	}
	return out
}

// Random picks uniformly. A nil picker uses the global source.
func (c *Catalog) Random(p Picker) string {
	if p == nil {
		return c.all[rand.IntN(len(c.all))]
	}
	return c.all[p.IntN(len(c.all))]
}
