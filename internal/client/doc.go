// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the favorites API.
//
// It wires the cobra command tree, the client configuration and the HTTP
// adapter into a single process lifecycle. Results are printed to the
// configured writer as JSON or YAML.
package client
