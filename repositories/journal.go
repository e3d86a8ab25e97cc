//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=../mocks/mock_journal_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const runKeyPrefix = "run:"

type IJournalRepository interface {
	StoreRun(record RunRecord) error
	ListRuns(limit int) ([]RunRecord, error)
}

type JournalRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewJournalRepository(db *badger.DB, log *slog.Logger) JournalRepository {
	return JournalRepository{db: db, log: log}
}

// RunRecord is one generation run as remembered by the journal.
type RunRecord struct {
	ID             uuid.UUID
	InputDir       string
	OutputPath     string
	Version        string
	EventCount     int
	Participants   int
	ArchiveEntries int
	OutputSha256   string
	Language       string
	Validated      bool
	Duration       time.Duration
	At             time.Time
}

// StoreRun persists a run record in BadgerDB.
// The key is formatted as "run:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two runs
//     land at the same nanosecond.
func (j JournalRepository) StoreRun(record RunRecord) error {
	key := fmt.Sprintf("%s%019d:%s", runKeyPrefix, record.At.UnixNano(), record.ID)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListRuns retrieves the most recent runs first, up to limit. Thanks to the
// padded timestamp in the key, a reverse prefix scan is already time-ordered.
func (j JournalRepository) ListRuns(limit int) ([]RunRecord, error) {
	var values [][]byte
	err := j.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(runKeyPrefix)
		// Let's go past the newest position run:9999999999999999999
		// Then, we walk backwards through the records
		seekKey := append([]byte(runKeyPrefix), []byte("9999999999999999999")...)

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(values) == limit {
				j.log.Debug(fmt.Sprintf("Maximum of %d runs reached", limit))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]RunRecord, 0, len(values))
	for _, b := range values {
		var record RunRecord
		if err := json.Unmarshal(b, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
