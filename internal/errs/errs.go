package errs

import "fmt"

type Code string

const (
	WriteWithCheck  Code = "WRITE_WITH_CHECK"
	WatchWithCheck  Code = "WATCH_WITH_CHECK"
	NoFilesFound    Code = "NO_FILES_FOUND"
	ChangesRequired Code = "CHANGES_REQUIRED"
	InvalidJobs     Code = "INVALID_JOBS"
)

var messages = map[Code]string{
	WriteWithCheck: `Invalid flag combination: cannot use --write with --check

Usage:
  - Rewrite files in place:
      tailwhip %[1]s --write
  - Fail when files are not sorted (CI):
      tailwhip %[1]s --check

Reason:
  --check never writes; it only reports whether --write would change anything.`,

	WatchWithCheck: `Invalid flag combination: cannot use --watch with --check

Usage:
  tailwhip %[1]s --watch --write

Reason:
  --check exits after one pass; --watch keeps running.`,

	NoFilesFound: `No files found

Checked:
  %[1]s

Hint:
  Directories are searched with the configured globs (%[2]s).
  Anything else is treated as a glob pattern from the working directory.`,

	ChangesRequired: `%[1]d file(s) need sorting

Run:
  tailwhip %[2]s --write`,

	InvalidJobs: `Invalid value for --jobs: %[1]d

Usage:
  tailwhip . --jobs 4      # four workers
  tailwhip . --jobs 0      # one worker per CPU`,
}

func Msg(code Code, a ...any) string {
	msg := messages[code]
	if msg == "" {
		msg = string(code)
	}
	return fmt.Sprintf(msg, a...)
}
