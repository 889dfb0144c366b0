// Package model defines the domain types and value objects for the
// tempconv CLI.
//
// This package contains pure data structures with no external dependencies.
// Unit and Temperature are immutable value objects: conversion produces a
// new Temperature rather than mutating the receiver, and a Unit that passed
// parsing is always one of the two enumerated scales.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
