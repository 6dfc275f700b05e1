// archive stores conversion results in a bolt database, so repeated
// runs on the same input can reuse them.
package archive

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("archive")

// RUNS is the bucket name for all records.
var RUNS = []byte("runs")

// openTimeout is how long Open waits for the database file lock.
const openTimeout = 5 * time.Second

// Record stores a single conversion.
type Record struct {
	// Input is the normalized DNA sequence.
	Input   string    `json:"input"`
	RNA     string    `json:"rna"`
	Protein string    `json:"protein"`
	GCode   int       `json:"gcode"`
	Time    time.Time `json:"time"`
}

// Key returns the record key: hex sha1 of the genetic code id and the
// normalized input.
func Key(input string, gcode int) []byte {
	h := sha1.New()
	h.Write([]byte(strconv.Itoa(gcode)))
	h.Write([]byte{':'})
	h.Write([]byte(input))
	return []byte(hex.EncodeToString(h.Sum(nil)))
}

// Key returns the key of the record.
func (r *Record) Key() []byte {
	return Key(r.Input, r.GCode)
}

// Store saves and loads records. A nil *Store does nothing.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Save saves a record to the database.
func (s *Store) Save(rec *Record) error {
	if s == nil {
		return nil
	}
	dataB, err := json.Marshal(rec)
	if err != nil {
		log.Error("Error serializing record", err)
		return err
	}
	err = SaveData(s.db, rec.Key(), dataB)
	if err != nil {
		log.Error("Error saving record", err)
	}
	return err
}

// Load returns the record stored under the key or nil if there is
// no such record.
func (s *Store) Load(key []byte) (*Record, error) {
	if s == nil {
		return nil, nil
	}

	b, err := LoadData(s.db, key)
	if err != nil || b == nil {
		return nil, err
	}

	var rec *Record
	err = json.Unmarshal(b, &rec)
	if err != nil {
		return nil, err
	}

	log.Debugf("Found record %s from %v", key, rec.Time)

	return rec, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(RUNS)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RUNS)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			// v is only valid during the transaction
			data = append(make([]byte, 0, len(v)), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
