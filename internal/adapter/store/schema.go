package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"textlab/config"
)

// CurrentSchemaVersion is the on-disk index format version. Increment on
// breaking changes to the storage layout.
const CurrentSchemaVersion = 1

var (
	keySchemaVersion = []byte("schema_version")
	keyConfigHash    = []byte("config_hash")
)

// SchemaInfo stores schema version and model configuration hash.
type SchemaInfo struct {
	Version    int    `json:"version"`
	ConfigHash string `json:"config_hash"`
}

// GetSchemaInfo retrieves the schema info from the database.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)
		if b == nil {
			return nil
		}

		if data := b.Get(keySchemaVersion); data != nil {
			if err := json.Unmarshal(data, &info.Version); err != nil {
				info.Version = 1
			}
		}
		if data := b.Get(keyConfigHash); data != nil {
			info.ConfigHash = string(data)
		}
		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		data, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, data); err != nil {
			return err
		}
		return b.Put(keyConfigHash, []byte(info.ConfigHash))
	})
}

// ComputeConfigHash hashes the model-affecting configuration. IDF weights
// depend on global corpus statistics, so any change here invalidates the
// whole index.
func ComputeConfigHash(cfg *config.Config) string {
	relevant := struct {
		Includes  []string `json:"includes"`
		Excludes  []string `json:"excludes"`
		Stopwords string   `json:"stopwords"`
		Stemming  bool     `json:"stemming"`
	}{
		Includes:  cfg.Corpus.Includes,
		Excludes:  cfg.Corpus.Excludes,
		Stopwords: cfg.Corpus.Stopwords,
		Stemming:  cfg.Corpus.Stemming,
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// RebuildCheck describes whether the index must be rebuilt.
type RebuildCheck struct {
	NeedsRebuild bool
	Reason       string
}

// CheckRebuild reports whether the stored index is usable with the given
// configuration.
func (s *BoltStore) CheckRebuild(cfg *config.Config) (*RebuildCheck, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	check := &RebuildCheck{}

	if info.Version != 0 && info.Version != CurrentSchemaVersion {
		check.NeedsRebuild = true
		check.Reason = fmt.Sprintf("index schema v%d, expected v%d", info.Version, CurrentSchemaVersion)
		return check, nil
	}

	newHash := ComputeConfigHash(cfg)
	if info.ConfigHash != "" && info.ConfigHash != newHash {
		check.NeedsRebuild = true
		check.Reason = "corpus configuration changed"
	}

	return check, nil
}

// MarkCurrent records the schema version and config hash after a
// successful index build.
func (s *BoltStore) MarkCurrent(cfg *config.Config) error {
	return s.SetSchemaInfo(&SchemaInfo{
		Version:    CurrentSchemaVersion,
		ConfigHash: ComputeConfigHash(cfg),
	})
}
