package render

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/arbiterhq/arbiter/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceFiles embed.FS

// glyphSize is the rasterization size of a piece glyph; glyphs are scaled
// down into board squares at draw time.
const glyphSize = 128

var (
	pieceCache   = map[board.Piece]image.Image{}
	pieceCacheMu sync.RWMutex
)

// pieceGlyph parses and rasterizes the embedded SVG for a piece, cached per
// piece value.
func pieceGlyph(p board.Piece) (image.Image, error) {
	pieceCacheMu.RLock()
	if img, ok := pieceCache[p]; ok {
		pieceCacheMu.RUnlock()
		return img, nil
	}
	pieceCacheMu.RUnlock()

	name := pieceAssetName(p)
	data, err := pieceFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", name, err)
	}
	icon.SetTarget(0, 0, glyphSize, glyphSize)

	img := image.NewRGBA(image.Rect(0, 0, glyphSize, glyphSize))
	scanner := rasterx.NewScannerGV(glyphSize, glyphSize, img, img.Bounds())
	raster := rasterx.NewDasher(glyphSize, glyphSize, scanner)
	icon.Draw(raster, 1.0)

	pieceCacheMu.Lock()
	pieceCache[p] = img
	pieceCacheMu.Unlock()

	return img, nil
}

func pieceAssetName(p board.Piece) string {
	prefix := "b"
	if p.Color == board.White {
		prefix = "w"
	}
	return fmt.Sprintf("assets/pieces/%s%c.svg", prefix, p.Kind.Letter(board.White))
}
