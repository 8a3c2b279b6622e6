package benchmark

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk YAML layout of one benchmark table. distribution
// is either the full peer list or evenly spaced points of a group of
// peer_count peers; ranks are scaled onto peer_count in the latter case.
//
//	sector: manufacturing
//	legal_entity: joint_stock
//	level: local
//	analyses:
//	  ratio.current: {average: 1.4, peer_count: 38, distribution: [0.9, 1.2, 1.6]}
type tableFile struct {
	Key      `yaml:",inline"`
	Analyses map[string]Entry `yaml:"analyses"`
}

// ParseTable decodes one YAML benchmark table.
func ParseTable(data []byte) (*Set, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("decode benchmark table: %w", err)
	}
	if strings.TrimSpace(tf.Sector) == "" {
		return nil, fmt.Errorf("benchmark table: missing sector")
	}
	if len(tf.Analyses) == 0 {
		return nil, fmt.Errorf("benchmark table %s: no analyses", tf.Key)
	}
	for id, e := range tf.Analyses {
		if e.PeerCount == 0 && len(e.Distribution) > 0 {
			e.PeerCount = len(e.Distribution)
			tf.Analyses[id] = e
		}
		sort.Float64s(e.Distribution)
	}
	return &Set{Key: tf.Key.Normalize(), Entries: tf.Analyses}, nil
}

// FileProvider serves tables loaded from a directory of YAML files.
type FileProvider struct {
	dir string

	mu     sync.RWMutex
	tables *StaticProvider
}

// NewFileProvider loads every *.yaml and *.yml file in dir.
func NewFileProvider(dir string) (*FileProvider, error) {
	p := &FileProvider{dir: dir}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the directory and swaps in the new tables. On error the
// previous tables stay in place.
func (p *FileProvider) Reload() error {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return fmt.Errorf("read benchmark dir: %w", err)
	}

	tables := NewStaticProvider()
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(p.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		set, err := ParseTable(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tables.Put(set)
	}
	p.mu.Lock()
	p.tables = tables
	p.mu.Unlock()
	return nil
}

func (p *FileProvider) current() *StaticProvider {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tables
}

// Len returns the number of loaded tables.
func (p *FileProvider) Len() int { return p.current().Len() }

// Table implements Provider.
func (p *FileProvider) Table(ctx context.Context, key Key) (*Set, error) {
	return p.current().Table(ctx, key)
}
