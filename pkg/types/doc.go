// Package types holds the command results rendered by the ui package.
package types
