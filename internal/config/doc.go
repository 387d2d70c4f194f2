// Package config loads runtime settings for mlb-gamedata.
//
// Settings come from, in increasing precedence: built-in defaults, an optional
// mlb-gamedata.yaml file, a .env file in the working directory, and
// MLB_GAMEDATA_* environment variables.
package config
