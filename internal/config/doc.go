// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources merged in order
// (environment variables, command-line flags, JSON file, built-in
// defaults); the first source to set a field wins. The main entry point is
// [GetConfig].
package config
