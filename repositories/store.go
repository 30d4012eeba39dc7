package repositories

import "github.com/dgraph-io/badger/v4"

const maxTxnRetries = 5

// runUpdate retries a read-write transaction when an overlapping commit wins
// Badger's optimistic conflict check. Re-running the closure re-reads current
// state, so losers converge on the winner's outcome (a duplicate registration
// observes the existing account, a second mark-read observes the stored
// timestamp) instead of surfacing ErrConflict.
func runUpdate(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for i := 0; i < maxTxnRetries; i++ {
		err = db.Update(fn)
		if err != badger.ErrConflict {
			return err
		}
	}
	return err
}
