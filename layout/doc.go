// Package layout computes renderer-facing metrics for ruby-annotated
// text: display-cell widths, how far a gloss overhangs its base text, and
// the dominant writing direction. It measures, it does not draw; widths
// use the fixed-cell model of terminals and monospace layout, where East
// Asian wide characters occupy two cells. Renderers that draw glosses at
// reduced size can scale the reported gloss widths themselves.
package layout
