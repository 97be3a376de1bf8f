// Package gbconfig loads the JSON ".gbconf" run configuration that drives a
// grain-boundary build: which two structure files to join, the grain-boundary
// settings, the coincident-point search bounds, the minimum-distance table and
// boundary radius for collision removal, and the output options.
//
// The core packages treat these values as opaque validated inputs; gbconfig
// is where defaulting and shape validation happen. Absent optional keys take
// the documented defaults; the two structure paths are the only required
// keys. An explicitly empty minimum-distance list turns collision removal
// off, matching the table's permissive no-constraint semantics.
//
// Errors:
//
//   - ErrMissingStruct: struct_1 or struct_2 absent.
//   - ErrBadConfig: JSON syntax errors or malformed entries (wrapped with
//     context).
package gbconfig
