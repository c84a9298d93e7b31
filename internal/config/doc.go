// Package config manages user-level CLI settings stored in
// ~/<home dir>/config.yaml, overridable with prefixed environment variables
// and a .env file in the working directory.
package config
