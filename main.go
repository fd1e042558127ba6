package main

import (
	"log"
	"os"
	"strings"

	"codebundle/cmd"
	"codebundle/pkg/logging"
	"codebundle/pkg/version"

	"golang.org/x/term"
)

func main() {
	logger, err := logging.New(false, "codebundle", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute(logger)

	// Check if stderr is a terminal or a regular file before attempting to sync.
	// Syncing a production logger against /dev/null or a pipe reports a spurious
	// "invalid argument" error on some platforms.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
