// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps medley settings in a TOML file under ~/.medley. Keys use
// dot notation ("catalog.base_url") and are written back as nested tables.
package file
