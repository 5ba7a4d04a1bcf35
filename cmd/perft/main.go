// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arnegard/rankfile/pkg/board"
	"github.com/arnegard/rankfile/pkg/board/fen"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard, or a minimal corner-kings layout if -width/-height are set)")
	width    = flag.Int("width", 8, "Board width, used only when -fen is unset")
	height   = flag.Int("height", 8, "Board height, used only when -fen is unset")
	castling = flag.Bool("castling", true, "Honor castling rights named in -fen")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
	showVer  = flag.Bool("version", false, "Print the tool version and exit")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *showVer {
		println(version.String())
		return
	}

	if *position == "" {
		if *width == 8 && *height == 8 {
			*position = fen.Initial
		} else {
			*position = cornerKingsFEN(*width, *height)
		}
	}

	g, err := fen.DecodeGame(*position, *castling)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(g, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

// cornerKingsFEN builds a bare w x h position with the white king in the
// bottom-left corner and the black king in the top-right corner, a
// reasonable smoke-test start for board sizes the standard layout doesn't fit.
func cornerKingsFEN(w, h int) string {
	rank := func(kingFile int) string {
		if kingFile == 0 {
			return "K" + blanks(w-1)
		}
		return blanks(w-1) + "K"
	}

	var ranks []string
	ranks = append(ranks, strings.Replace(rank(w-1), "K", "k", 1))
	for r := 0; r < h-2; r++ {
		ranks = append(ranks, strconv.Itoa(w))
	}
	ranks = append(ranks, rank(0))

	return fmt.Sprintf("%v w - - 0 1", strings.Join(ranks, "/"))
}

func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func search(g *board.Game, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range g.LegalMoves() {
		if !g.MakeMove(m) {
			continue
		}
		count := search(g, depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
		g.UnmakeMove()
	}
	return nodes
}
