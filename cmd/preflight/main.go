// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

// Sanity-checks the environment before starting the results API.
func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("ADMIN_API_KEYS"))
	apiAddr := strings.TrimSpace(os.Getenv("API_ADDR"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	allowed := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))

	if admin == "" {
		warn("ADMIN_API_KEYS is empty; DELETE /api/records will be open (dev mode).")
	} else {
		if strings.Contains(admin, " ") {
			warn("ADMIN_API_KEYS contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
		ok("ADMIN_API_KEYS present")
	}

	if apiAddr == "" {
		warn("API_ADDR is empty; the default bind address will be used.")
	} else {
		ok("API_ADDR=" + apiAddr)
	}

	switch {
	case db == "":
		warn("DATABASE_URL empty; API serves an empty in-memory store; scans will not be visible.")
	case strings.HasPrefix(db, "postgres://") || strings.HasPrefix(db, "postgresql://"):
		ok("DATABASE_URL is a postgres DSN")
	default:
		if _, err := os.Stat(db); err != nil {
			fail("DATABASE_URL points to a sqlite file that does not exist: " + db)
		}
		ok("DATABASE_URL is an existing sqlite file")
	}

	if allowed == "" {
		warn("ALLOWED_ORIGINS empty; browsers will be blocked by CORS for cross-origin requests.")
	} else {
		ok("ALLOWED_ORIGINS=" + allowed)
	}

	ok("preflight passed")
}
