// Package cli implements the urlfor command: it loads a config file, builds
// the route table and prints route or static asset URLs.
package cli
