package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/ytget/loadstatus/internal/model"
)

const recordPrefix = "transfer/"

// Store persists transfer records in Badger
type Store struct {
	db  *badger.DB
	log *slog.Logger
}

// OpenStore opens a Badger database at path. An empty path keeps it in memory.
func OpenStore(log *slog.Logger, path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		opts = opts.WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open transfer store: %w", err)
	}
	return NewStore(db, log), nil
}

// NewStore wraps an open database
func NewStore(db *badger.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(handle model.TransferHandle) []byte {
	return []byte(recordPrefix + string(handle))
}

// Put writes or replaces a record
func (s *Store) Put(rec model.Transfer) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer %s: %w", rec.Handle, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rec.Handle), data)
	})
}

// Get reads a record. The bool is false when the record does not exist.
func (s *Store) Get(handle model.TransferHandle) (model.Transfer, bool, error) {
	var rec model.Transfer
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(handle))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.Transfer{}, false, nil
	}
	if err != nil {
		return model.Transfer{}, false, fmt.Errorf("failed to read transfer %s: %w", handle, err)
	}
	return rec, true, nil
}

// Delete removes a record and reports whether it existed
func (s *Store) Delete(handle model.TransferHandle) (bool, error) {
	existed := false
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(recordKey(handle))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		existed = true
		return txn.Delete(recordKey(handle))
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete transfer %s: %w", handle, err)
	}
	return existed, nil
}

// List returns all records, oldest handle first
func (s *Store) List() ([]model.Transfer, error) {
	var records []model.Transfer
	prefix := []byte(recordPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec model.Transfer
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("failed to unmarshal transfer: %w", err)
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error listing transfers: %w", err)
	}
	return records, nil
}
