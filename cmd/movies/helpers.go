package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/mpfechner/movie-manager-cli/internal/collection"
	"github.com/mpfechner/movie-manager-cli/internal/omdb"
	"github.com/mpfechner/movie-manager-cli/internal/report"
	"github.com/mpfechner/movie-manager-cli/internal/store"
	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/viper"
)

// setupLogging applies the verbosity flags before a command runs
func setupLogging() {
	util.SetVerbose(viper.GetBool("verbose"))
	util.SetQuiet(viper.GetBool("quiet"))
}

// openStore opens the collection database from the configured path
func openStore() (*store.Store, error) {
	dbPath := viper.GetString("db")

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// lockStore takes an advisory lock beside the database so two processes
// cannot mutate the same collection concurrently. The caller must Unlock.
func lockStore() (*flock.Flock, error) {
	lockPath := viper.GetString("db") + ".lock"
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another movies process is using %s", viper.GetString("db"))
	}

	return lock, nil
}

// activeUser resolves the --user flag to a stored profile
func activeUser(db *store.Store) (*store.User, error) {
	name := viper.GetString("user")
	if name == "" {
		return nil, fmt.Errorf("no user selected (use --user or set MOVIES_USER)")
	}

	user, err := db.FindUser(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s (run 'movies users create %s' first)", util.ErrUnknownUser, name, name)
	}

	return user, nil
}

// newAudit returns the configured audit logger, or a no-op logger
func newAudit() *report.AuditLogger {
	if !viper.GetBool("audit") {
		return report.NullLogger()
	}

	logger, err := report.NewAuditLogger(viper.GetString("audit-dir"))
	if err != nil {
		util.WarnLog("Failed to create audit log: %v", err)
		return report.NullLogger()
	}

	util.DebugLog("Audit log: %s", logger.Path())
	return logger
}

// newLookup builds the OMDb client from configuration
func newLookup() *omdb.Client {
	return omdb.NewClient(&omdb.Config{
		APIKey:   viper.GetString("api-key"),
		TestMode: viper.GetBool("test-mode"),
	})
}

// newService wires the orchestration layer for a command
func newService(db *store.Store, audit *report.AuditLogger) *collection.Service {
	return collection.New(&collection.Config{
		Store:  db,
		Lookup: newLookup(),
		Audit:  audit,
	})
}

// confirm asks a yes/no question on the terminal and reports the answer.
// Anything other than an explicit yes counts as no.
func confirm(prompt string) bool {
	return confirmFrom(os.Stdin, prompt)
}

func confirmFrom(in io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// readTitleArg joins command arguments into one title query
func readTitleArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
