// Package testutil holds fixtures, fake binaries and testify mocks shared by
// the package tests. Nothing here is imported by production code.
package testutil
