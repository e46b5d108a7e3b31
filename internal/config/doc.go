// Package config manages project-level settings stored in skillhub.yaml at
// the hub root. Values come from built-in defaults, the config file, and
// SKILLHUB_* environment variables, in increasing priority.
package config
