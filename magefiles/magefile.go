//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the contacts project using Mage.
//
// Usage:
//
//	mage build          Compile contacts binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests in short mode
//	mage test:cover     Run all tests with a coverage profile
//	mage vet            Run go vet
//	mage lint           Run go vet and golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install contacts to GOPATH/bin
//	mage stats          Print Go LOC and documentation word counts
package main
