// Package project persists a region store as a YAML document:
//
//	mill:
//	  - name: POCKET (1)
//	    lines:
//	      - "#a1b2,1#Z-2(M:A0000)"
//	    snapshot:
//	      ZPlaneLine: "#a1b2,1#Z-2(M:A0000)"
//	    show_in_view_all: true
//	    export_enabled: true
//	turn: []
//	drill: []
package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/dshills/strokemark/internal/region"
)

// RegionDoc is the persisted form of one region.
type RegionDoc struct {
	Name          string            `yaml:"name"`
	Lines         []string          `yaml:"lines"`
	Snapshot      map[string]string `yaml:"snapshot,omitempty"`
	ShowInViewAll *bool             `yaml:"show_in_view_all,omitempty"`
	ExportEnabled *bool             `yaml:"export_enabled,omitempty"`
}

// File is the persisted form of a store.
type File struct {
	Mill  []RegionDoc `yaml:"mill"`
	Turn  []RegionDoc `yaml:"turn"`
	Drill []RegionDoc `yaml:"drill"`
}

func (f *File) docs(kind region.Kind) *[]RegionDoc {
	switch kind {
	case region.Turn:
		return &f.Turn
	case region.Drill:
		return &f.Drill
	default:
		return &f.Mill
	}
}

// Decode reads a project document into a new store. Missing flags default
// to true; a region without lines gets an empty line container.
func Decode(r io.Reader) (*region.Store, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding project: %w", err)
	}

	store := region.NewStore()
	for _, kind := range region.Kinds() {
		for i, doc := range *f.docs(kind) {
			r := region.New(kind, doc.Name)
			r.Lines = append(r.Lines, doc.Lines...)
			for k, v := range doc.Snapshot {
				r.Snapshot[k] = v
			}
			r.ShowInViewAll = lo.FromPtrOr(doc.ShowInViewAll, true)
			r.ExportEnabled = lo.FromPtrOr(doc.ExportEnabled, true)
			if _, err := store.Add(r); err != nil {
				return nil, fmt.Errorf("%s region %d (%q): %w", kind, i, doc.Name, err)
			}
		}
	}
	return store, nil
}

// Encode writes store as a project document.
func Encode(w io.Writer, store *region.Store) error {
	var f File
	for _, kind := range region.Kinds() {
		docs := lo.Map(store.Collection(kind).Regions(), func(r *region.Region, _ int) RegionDoc {
			return RegionDoc{
				Name:          r.Name,
				Lines:         append([]string{}, r.Lines...),
				Snapshot:      r.Snapshot,
				ShowInViewAll: lo.ToPtr(r.ShowInViewAll),
				ExportEnabled: lo.ToPtr(r.ExportEnabled),
			}
		})
		*f.docs(kind) = docs
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	return enc.Close()
}

// Load reads the project file at path. A missing file yields an empty
// store.
func Load(path string) (*region.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return region.NewStore(), nil
		}
		return nil, fmt.Errorf("reading project %s: %w", path, err)
	}
	store, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Save writes store to path, replacing the file atomically.
func Save(path string, store *region.Store) error {
	var buf bytes.Buffer
	if err := Encode(&buf, store); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("saving project %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("saving project %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving project %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving project %s: %w", path, err)
	}
	return nil
}
