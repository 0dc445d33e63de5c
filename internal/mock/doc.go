// Package mock holds go.uber.org/mock test doubles for the interfaces of the
// adapter, service and store packages. They follow mockgen's layout and are
// kept by hand; the go:generate lines next to each interface regenerate them.
package mock
