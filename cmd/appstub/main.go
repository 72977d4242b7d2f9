// Command appstub serves the stub matching platform standalone, for writing
// specs against it in a real browser or pointing BASE_URL at it.
package main

import (
	"flag"
	"net/http"

	"github.com/matchqueue/e2e/appstub"
	"github.com/matchqueue/e2e/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	app := appstub.NewApp(appstub.Options{})
	defer app.Close()

	logging.Info("appstub listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, app); err != nil {
		logging.Error("server stopped", err)
	}
}
