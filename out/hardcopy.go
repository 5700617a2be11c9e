// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
)

// WriteHTML writes the html gallery: an index page linking one page per
// frame, each page showing the images of all figures of that frame
func (o *PlotData) WriteHTML(frames []*Frame, figs []*Fig) (err error) {

	// index
	l := "<html>\n<head><title>Frames</title></head>\n<body>\n"
	l += "<h1>Frames</h1>\n"
	if o.HomeLink != "" {
		l += io.Sf("<p><a href=\"%s\">Back</a></p>\n", o.HomeLink)
	}
	l += "<ul>\n"
	for _, f := range frames {
		l += io.Sf("  <li><a href=\"frame%04d.html\">Frame %d &mdash; t = %g</a></li>\n", f.Index, f.Index, f.T)
	}
	l += "</ul>\n</body>\n</html>\n"
	io.WriteFileSD(o.DirPlots, "index.html", l)

	// frame pages
	for i, f := range frames {
		l = io.Sf("<html>\n<head><title>Frame %d</title></head>\n<body>\n", f.Index)
		l += io.Sf("<h1>Frame %d &mdash; t = %g</h1>\n", f.Index, f.T)
		l += "<p><a href=\"index.html\">Index</a>"
		if i > 0 {
			l += io.Sf(" | <a href=\"frame%04d.html\">Prev</a>", frames[i-1].Index)
		}
		if i < len(frames)-1 {
			l += io.Sf(" | <a href=\"frame%04d.html\">Next</a>", frames[i+1].Index)
		}
		l += "</p>\n"
		for _, fig := range figs {
			l += io.Sf("<h2>%s</h2>\n", fig.Name)
			l += io.Sf("<img src=\"%s\">\n", FrameFilename(f.Index, fig.Num, o.Format))
		}
		l += "</body>\n</html>\n"
		io.WriteFileSD(o.DirPlots, io.Sf("frame%04d.html", f.Index), l)
	}
	return
}

// WriteLatex writes the latex gallery: one standalone document arranging
// the frame images with FigsPerLine figures per line and FramesPerLine
// frame rows per block
func (o *PlotData) WriteLatex(frames []*Frame, figs []*Fig) (err error) {
	wid := 0.95 / float64(o.FigsPerLine)
	l := "\\documentclass{article}\n"
	l += "\\usepackage{graphicx}\n"
	l += "\\usepackage[margin=1cm]{geometry}\n"
	l += "\\begin{document}\n"
	for i, f := range frames {
		l += io.Sf("\n%% frame %d\n", f.Index)
		for j, fig := range figs {
			l += io.Sf("\\includegraphics[width=%.3f\\textwidth]{%s}\n", wid, FrameFilename(f.Index, fig.Num, o.Format))
			if (j+1)%o.FigsPerLine == 0 && j+1 < len(figs) {
				l += "\\\\\n"
			}
		}
		l += io.Sf("\\par\\noindent Frame %d, $t = %g$\\par\n", f.Index, f.T)
		if (i+1)%o.FramesPerLine == 0 && i+1 < len(frames) {
			l += "\\clearpage\n"
		}
	}
	l += "\n\\end{document}\n"
	io.WriteFileSD(o.DirPlots, "plots.tex", l)
	if o.MakePDF {
		io.Pf("to build the pdf, run: pdflatex -halt-on-error %s/plots.tex\n", o.DirPlots)
	}
	return
}
