// Package vaspio reads and writes crystal structures in the text formats the
// builder exchanges with the outside world: VASP POSCAR input/output, XYZ
// output, and EMS output.
//
// The reader guarantees the contract the core packages rely on: the parsed
// basis is non-singular (structure construction enforces it), the element
// list and count line agree, and only "Direct" (fractional) coordinate mode
// is accepted — anything else is rejected here, never handed downstream.
//
// The writers only assume what every Structure guarantees by construction:
// atoms are element-sorted and the Cartesian view is derived on demand, so
// direct and Cartesian data are consistent at hand-off time.
//
// Errors:
//
//   - ErrMalformedInput: truncated or non-numeric POSCAR content (wrapped
//     with line context).
//   - ErrMissingElementNames: counts line appears before any element names.
//   - ErrElementCountMismatch: element list and count line differ in length.
//   - ErrNotDirectMode: coordinate mode other than Direct.
//   - ErrUnknownElement: EMS export hit a symbol with no atomic number.
package vaspio
