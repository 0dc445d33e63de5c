// Package config provides configuration loading, merging, and validation
// facilities for the names server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags (server) or CLI overrides (client)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
