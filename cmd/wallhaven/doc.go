// Package main hosts the wallhaven CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into typed
// API calls: wallpaper search, detail lookups, tag and collection browsing,
// account settings, and configuration scaffolding. It centralizes
// configuration resolution, client construction, and logging setup so
// subcommands can focus on rendering results.
//
// Keep this package lean: add new functionality to the wallhaven client
// package first, then surface it through dedicated commands or flags here.
package main
