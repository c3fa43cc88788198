package internal

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Local-store inspector. Lists persisted keys by prefix so the auth state,
// pending verifications and cached contacts can be eyeballed during
// development. Mounted only when DEBUG is on.

const inspectPage = `<!DOCTYPE html>
<html>
<head><title>store inspector</title>
<style>
body { font-family: monospace; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 4px 10px; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h1>store inspector</h1>
<form method="get"><input name="prefix" value="{{.Prefix}}"><button>filter</button></form>
<table>
<tr><th>Key</th><th>Namespace</th><th>Entity</th><th>Size</th></tr>
{{range .Items}}<tr><td>{{.Key}}</td><td>{{.Namespace}}</td><td>{{.EntityID}}</td><td>{{.Size}}</td></tr>
{{end}}
</table>
</body>
</html>`

type InspectRow struct {
	Key       string
	Namespace string
	EntityID  string
	Size      string
}

type PageData struct {
	Prefix string
	Items  []InspectRow
}

// StartInspectServer serves the inspector on its own port, away from the
// API routes.
func StartInspectServer(db *badger.DB, port int) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.New("inspect").Parse(inspectPage))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")

		data := PageData{Prefix: prefix}
		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// mapRow understands the store's key scheme: a bare "authstate" singleton
// and "otp:{phone}" / "contact:{phone}" rows.
func mapRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Namespace: "default",
		EntityID:  "--------",
		Size:      fmt.Sprintf("%d bytes", len(val)),
	}

	if ns, entity, found := strings.Cut(key, ":"); found {
		row.Namespace = ns
		row.EntityID = entity
	} else {
		row.Namespace = key
	}
	return row
}
