// Package render holds the print-side value objects: page formats, layout
// styles and the render job handed to the PDF adapter. The domain decides
// what gets printed; how the pixels land on the page lives in the adapter.
package render
