// Package resolver resolves action result descriptors into result paths.
//
// A result descriptor is a base path, usually the action path, plus an
// optional value returned by the action. The value may contain macros:
//
//   - <name> is replaced with the target of alias "name"
//   - a value holding nothing but an alias name is replaced as a whole
//   - each leading '#' strips one segment from the base path (goes "back")
//   - ".." splits what follows into the result value
//
// A value that expands to an absolute path (leading '/') replaces the base
// path. Every other result is prefixed with the configured result path
// prefix.
//
// # Usage
//
//	r := resolver.New(registry, cfg)
//
//	r.ResolveResultPath("/book/view", "ok")        // /book/view + value "ok"
//	r.ResolveResultPath("/book/view", "#list")     // /book.list
//	r.ResolveResultPath("/book/view", "<home>")    // /index when home -> /index
//	r.ResolveResultPathString("/book/view", "#.ok") // /book.ok
//
// The resolver never fails. Unknown aliases expand to nothing and an
// unterminated "<name" runs to the end of the value.
package resolver
