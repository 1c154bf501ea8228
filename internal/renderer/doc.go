// Package renderer turns a sheet into pixels on a terminal.
//
// Rendering happens in two steps:
//
//   - Grid builds the table element tree for a sheet.Store inside a
//     container element: a header row of Sort buttons, then one row of
//     disabled inputs per store row.
//   - Painter draws a ui.Document onto a backend.Backend using a Theme.
//
// The element tree is rebuilt after every mutation, so Grid keeps no sheet
// state of its own. Sub-packages provide the terminal abstraction (backend)
// and the shared value types (core).
package renderer
