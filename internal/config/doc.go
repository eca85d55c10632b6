// Package config loads the recipe-manager server configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (env > flags > JSON > defaults) and
// the result is validated before the application starts. Validation is
// strict about secrets: a missing token sign key aborts startup.
package config
