package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"chat-client/repositories"
)

// Dumps the local store as a table. Knows the three key namespaces the
// client persists: the "authstate" singleton, "otp:{phone}" pending
// verifications and "contact:{phone}" cached contacts.
func main() {
	dbPath := flag.String("db", "/tmp/chat-client/badger", "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan (empty scans everything)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Entity", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append(describe(key, v))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}

func describe(key string, val []byte) []string {
	ns, entity, _ := strings.Cut(key, ":")

	switch ns {
	case "authstate":
		var state repositories.StoredAuthState
		if err := json.Unmarshal(val, &state); err == nil {
			return []string{key, "AUTH", state.UserID, fmt.Sprintf(
				"phone=%s logged_in=%t profile=%t", state.Phone, state.LoggedIn, state.ProfileCompleted)}
		}
	case "otp":
		var pending repositories.PendingVerification
		if err := json.Unmarshal(val, &pending); err == nil {
			return []string{key, "OTP", entity, fmt.Sprintf(
				"attempts=%d expires=%s", pending.Attempts, pending.ExpiresAt.Format(time.RFC822))}
		}
	case "contact":
		return []string{key, "CONTACT", entity, fmt.Sprintf("size=%d bytes", len(val))}
	}
	return []string{key, "RAW", "--------", fmt.Sprintf("size=%d bytes", len(val))}
}
