// Package config provides configuration loading, merging, and validation
// facilities for the fintrace client.
//
// Configuration is assembled from multiple sources. Each later source only
// fills the fields that earlier sources left empty:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied last and the result is validated. The main entry point
// is [GetClientConfig].
package config
