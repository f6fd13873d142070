// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the fair-share client.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path taken from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which maps the merged
// [StructuredConfig] into the validated [ClientConfig] used at startup.
package config
