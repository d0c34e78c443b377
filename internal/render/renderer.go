// Package render draws a board position as a PNG image for the board
// inspection endpoint.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/arbiterhq/arbiter/internal/board"
)

// Options tunes one rendering. Highlight marks the endpoints of the last
// applied move.
type Options struct {
	Highlight *board.Move
}

// BoardRenderer renders a position to an encoded image.
type BoardRenderer interface {
	RenderPNG(ctx context.Context, b *board.Board, opts Options) ([]byte, error)
}

type svgBoardRenderer struct{}

func NewBoardRenderer() BoardRenderer {
	return &svgBoardRenderer{}
}

var (
	lightSquare    = color.RGBA{233, 207, 163, 255}
	darkSquare     = color.RGBA{187, 136, 96, 255}
	highlightColor = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	borderColor    = color.RGBA{38, 32, 26, 255}
)

func (r *svgBoardRenderer) RenderPNG(ctx context.Context, b *board.Board, opts Options) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("board is nil")
	}

	const (
		squareSize = 72
		margin     = 18
		boardSize  = squareSize * 8
	)
	total := boardSize + margin*2
	origin := image.Point{X: margin, Y: margin}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	img := image.NewRGBA(image.Rect(0, 0, total, total))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(borderColor), image.Point{}, imagedraw.Src)

	drawSquares(img, squareSize, origin)
	drawHighlight(img, opts.Highlight, squareSize, origin)
	if err := drawPieces(img, b, squareSize, origin); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// squareRect maps a board coordinate to screen pixels. White's home rank
// (y = 0) renders at the bottom.
func squareRect(c board.Coord, squareSize int, origin image.Point) image.Rectangle {
	x := origin.X + c.X*squareSize
	y := origin.Y + (7-c.Y)*squareSize
	return image.Rect(x, y, x+squareSize, y+squareSize)
}

func drawSquares(dst imagedraw.Image, squareSize int, origin image.Point) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			clr := lightSquare
			if (x+y)%2 == 0 {
				clr = darkSquare
			}
			rect := squareRect(board.Coord{X: x, Y: y}, squareSize, origin)
			imagedraw.Draw(dst, rect, image.NewUniform(clr), image.Point{}, imagedraw.Src)
		}
	}
}

func drawHighlight(dst imagedraw.Image, mv *board.Move, squareSize int, origin image.Point) {
	if mv == nil {
		return
	}
	for _, c := range []board.Coord{mv.From, mv.To} {
		if !c.Valid() {
			continue
		}
		rect := squareRect(c, squareSize, origin)
		imagedraw.Draw(dst, rect, image.NewUniform(highlightColor), image.Point{}, imagedraw.Over)
	}
}

func drawPieces(dst *image.RGBA, b *board.Board, squareSize int, origin image.Point) error {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := board.Coord{X: x, Y: y}
			p, ok := b.PieceAt(c)
			if !ok {
				continue
			}
			glyph, err := pieceGlyph(p)
			if err != nil {
				return err
			}
			rect := squareRect(c, squareSize, origin)
			xdraw.ApproxBiLinear.Scale(dst, rect, glyph, glyph.Bounds(), xdraw.Over, nil)
		}
	}
	return nil
}
