// Package constants contains file names and defaults shared by romancalc packages.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "romancalc"

	// LogFilename is the rotating log file name inside the data directory.
	LogFilename = "romancalc.log"

	// HistoryFilename is the SQLite evaluation history database file name.
	HistoryFilename = "history.db"

	// DefaultConfigFile is the config file read when --config is not given.
	DefaultConfigFile = "romancalc.yml"

	// DefaultInputFile holds one expression per line.
	DefaultInputFile = "input.txt"

	// DefaultOutputFile receives one result per input line.
	DefaultOutputFile = "output.txt"

	// DefaultWorkers evaluates lines sequentially.
	DefaultWorkers = 1

	// DefaultHistoryLimit is the number of entries shown by the history command.
	DefaultHistoryLimit = 20

	// DoneKeyword ends interactive input (case-insensitive).
	DoneKeyword = "done"
)
