package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"
	"textlab/internal/domain"
)

var (
	bucketDocs  = []byte("docs")
	bucketTexts = []byte("texts")
	bucketModel = []byte("model")
	bucketStats = []byte("stats")
	keyWeights  = []byte("weights")
	keyStats    = []byte("corpus_stats")
)

// BoltStore persists the corpus and the fitted weight model in a bbolt
// database. Documents are keyed by their zero-padded corpus index so the
// corpus ordering is stable.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketDocs, bucketTexts, bucketModel, bucketStats}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type docMeta struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	ModTime int64  `json:"mod_time"`
}

func docKey(index int) []byte {
	return []byte(fmt.Sprintf("%08d", index))
}

func (s *BoltStore) PutDoc(doc domain.Document) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := docMeta{
			ID:      doc.ID,
			Path:    doc.Path,
			ModTime: doc.ModTime.Unix(),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketDocs).Put(docKey(doc.Index), data)
	})
}

func (s *BoltStore) GetDoc(index int) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get(docKey(index))
		if data == nil {
			return fmt.Errorf("document %d: %w", index, domain.ErrInvalidDocumentIndex)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		doc = domain.Document{
			ID:      meta.ID,
			Path:    meta.Path,
			Index:   index,
			ModTime: time.Unix(meta.ModTime, 0),
		}
		return nil
	})
	return doc, err
}

func (s *BoltStore) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocs)
		return b.ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			var index int
			if _, err := fmt.Sscanf(string(k), "%d", &index); err != nil {
				return err
			}
			docs = append(docs, domain.Document{
				ID:      meta.ID,
				Path:    meta.Path,
				Index:   index,
				ModTime: time.Unix(meta.ModTime, 0),
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Index < docs[j].Index })
	return docs, nil
}

func (s *BoltStore) PutText(index int, text string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTexts).Put(docKey(index), []byte(text))
	})
}

func (s *BoltStore) GetText(index int) (string, error) {
	var text string
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTexts).Get(docKey(index))
		if data == nil {
			return fmt.Errorf("text %d: %w", index, domain.ErrInvalidDocumentIndex)
		}
		text = string(data)
		return nil
	})
	return text, err
}

func (s *BoltStore) PutWeights(weights *domain.TermWeights) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(weights)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketModel).Put(keyWeights, data)
	})
}

func (s *BoltStore) GetWeights() (*domain.TermWeights, error) {
	var weights domain.TermWeights
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketModel).Get(keyWeights)
		if data == nil {
			return fmt.Errorf("no weight model stored: %w", domain.ErrEmptyCorpus)
		}
		return json.Unmarshal(data, &weights)
	})
	if err != nil {
		return nil, err
	}
	return &weights, nil
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

// Clear removes all corpus data, keeping schema bookkeeping intact.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketDocs, bucketTexts, bucketModel}
		for _, name := range buckets {
			b := tx.Bucket(name)
			if b == nil {
				continue
			}
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if err := b.Delete(k); err != nil {
					return err
				}
			}
		}

		statsBucket := tx.Bucket(bucketStats)
		if statsBucket != nil {
			c := statsBucket.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if string(k) != string(keySchemaVersion) && string(k) != string(keyConfigHash) {
					if err := statsBucket.Delete(k); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
