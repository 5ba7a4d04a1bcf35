// render draws a position as an SVG board diagram, for visually inspecting
// perft disagreements and FEN round-trips on boards of any size.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/arnegard/rankfile/pkg/board"
	"github.com/arnegard/rankfile/pkg/board/fen"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	position = flag.String("fen", "", "Position to render (default to standard)")
	out      = flag.String("out", "", "Output file (default to stdout)")
	square   = flag.Int("square", 64, "Pixel size of one board square")
	showVer  = flag.Bool("version", false, "Print the tool version and exit")
)

var (
	lightSquare = "fill:#eeeed2"
	darkSquare  = "fill:#769656"
	whiteGlyph  = "text-anchor:middle;font-size:%dpx;fill:#f8f8f8;stroke:#000;stroke-width:1"
	blackGlyph  = "text-anchor:middle;font-size:%dpx;fill:#101010"
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *showVer {
		println(version.String())
		return
	}

	if *position == "" {
		*position = fen.Initial
	}

	pos, _, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logw.Exitf(ctx, "Cannot create '%v': %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	render(w, pos, *square)
}

// render draws pos onto canvas as an SVG board diagram with side squares of
// the given pixel size.
func render(w *os.File, pos *board.Position, sq int) {
	b := pos.Board()
	width, height := b.Width()*sq, b.Height()*sq

	canvas := svg.New(w)
	canvas.Start(width, height)

	for r := 0; r < b.Height(); r++ {
		for f := 0; f < b.Width(); f++ {
			x, y := f*sq, (b.Height()-1-r)*sq

			style := lightSquare
			if (f+r)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, sq, sq, style)

			p, ok := b.Get(board.NewSquare(board.File(f), board.Rank(r)))
			if !ok {
				continue
			}

			glyphStyle := blackGlyph
			if p.Color == board.White {
				glyphStyle = whiteGlyph
			}
			canvas.Text(x+sq/2, y+sq*3/4, pieceGlyph(p), fmt.Sprintf(glyphStyle, sq*3/4))
		}
	}

	canvas.End()
}

// pieceGlyph maps a piece to the Unicode chess symbol used as its SVG label.
func pieceGlyph(p board.Piece) string {
	glyphs := map[board.Kind][2]string{
		board.King:   {"♔", "♚"},
		board.Queen:  {"♕", "♛"},
		board.Rook:   {"♖", "♜"},
		board.Bishop: {"♗", "♝"},
		board.Knight: {"♘", "♞"},
		board.Pawn:   {"♙", "♟"},
	}
	g, ok := glyphs[p.Kind]
	if !ok {
		return "?"
	}
	if p.Color == board.White {
		return g[0]
	}
	return g[1]
}
