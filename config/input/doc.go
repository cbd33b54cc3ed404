// Package input provides re-openable config inputs for the dispatcher.
//
// Every Open call hands out a fresh, exclusively owned reader, which lets the
// dispatcher try several providers on the same input one after another. The
// caller closes each reader when its attempt is over.
//
// Usage:
//
//	in := input.NewFile("/etc/app/app.yaml")
//	value, err := dispatcher.Dispatch(in, provider.Options{}, dispatch.Hint{})
//
// Error Handling:
//   - Open on a directory fails with ErrPathIsDirectory
//   - Open on a missing file fails with an error matching fs.ErrNotExist
//   - Errors include the path for easier debugging
//
// File and FS inputs can resolve names relative to themselves, which the
// dispatcher uses to offer an include context to providers.
package input
