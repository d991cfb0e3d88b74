// Command inspect dumps the persisted room statuses and credential entries
// from a BadgerDB store. Secrets stay sealed: only their ciphertext size is
// shown.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"muc-lab/domain"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	prefix := flag.String("prefix", "status:", "Prefix to scan (status: or cred:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Provider", "Room", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
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
				fmt.Printf("Error reading key %s: %v\n", key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
}

func describe(key string, value []byte) []string {
	parts := strings.SplitN(key, ":", 3)
	provider, room := "?", "?"
	if len(parts) == 3 {
		provider, room = parts[1], parts[2]
	}

	switch {
	case strings.HasPrefix(key, "status:") && len(value) == 1:
		return []string{key, provider, room, domain.PresenceStatus(value[0]).String()}
	case strings.HasPrefix(key, "cred:"):
		return []string{key, provider, room, fmt.Sprintf("sealed (%d bytes)", len(value))}
	default:
		return []string{key, provider, room, fmt.Sprintf("%d bytes", len(value))}
	}
}
