// Package config provides configuration loading and defaults for habitr.
package config

// DefaultConfigDir is the default location for habitr configuration and data.
const DefaultConfigDir = "~/.config/habitr"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "habitr.db"

// DefaultLogName is the filename for the JSON log.
const DefaultLogName = "habitr.log"

// DefaultExportDir is where TUI exports are written.
const DefaultExportDir = "~"

// DefaultLogLevel applies unless --verbose or log_level says otherwise.
const DefaultLogLevel = "info"

// EnvPrefix namespaces environment overrides, e.g. HABITR_DB_PATH.
const EnvPrefix = "HABITR"
