package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JoanGoAl/unhaunter/board"
)

// minVisibleTint keeps fully dark tiles barely readable instead of pure
// black, which reads as a rendering bug rather than darkness.
const minVisibleTint = 0.02

// TintForLux maps a tile's lux to a brightness multiplier using the scene
// exposure. The square root compresses the range so dim rooms stay legible
// while lit rooms do not blow out.
func TintForLux(lux, exposureLux float32) float32 {
	if exposureLux <= 0 {
		exposureLux = 1.0
	}
	rel := float64(lux / exposureLux)
	tint := float32(math.Sqrt(rel))
	if tint < minVisibleTint {
		return minVisibleTint
	}
	if tint > 1 {
		return 1
	}
	return tint
}

// Draw renders the grid, placed objects and the player. Every tile sprite
// is tinted by the light field so darkness is an output of the lighting
// rebuild, not an overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	data := g.gameMap.Data
	tileSize := float64(data.RenderTileSize)
	scale := tileSize / float64(data.TileSize)

	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			name := data.Tiles[y][x]
			if name == "" {
				continue
			}
			g.drawTile(screen, name, x, y, scale, tileSize)
		}
	}

	for _, obj := range data.Objects {
		g.drawTile(screen, obj.Tile, obj.X, obj.Y, scale, tileSize)
	}

	px := float32((float64(g.player.Pos.X) + 0.5) * tileSize)
	py := float32((float64(g.player.Pos.Y) + 0.5) * tileSize)
	radius := float32(tileSize) * 0.25
	vector.DrawFilledCircle(screen, px, py, radius, color.RGBA{255, 230, 120, 255}, true)
	vector.StrokeCircle(screen, px, py, radius, 2, color.RGBA{180, 150, 40, 255}, true)

	g.drawHUD(screen)
}

func (g *Game) drawTile(screen *ebiten.Image, name string, x, y int, scale, tileSize float64) {
	tile, ok := g.gameMap.Atlas.GetTile(name)
	if !ok {
		return
	}
	img := g.gameMap.Atlas.GetTileSubImage(tile)

	light := g.bf.LightAt(board.BoardPosition{X: x, Y: y})
	tint := TintForLux(light.Lux, g.bf.ExposureLux)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(float64(x)*tileSize, float64(y)*tileSize)
	opts.ColorScale.Scale(
		tint*light.Color.R,
		tint*light.Color.G,
		tint*light.Color.B,
		1,
	)
	screen.DrawImage(img, opts)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	tile := g.player.Pos.ToBoardPosition()
	light := g.bf.LightAt(tile)
	temp := g.bf.TemperatureField[tile]

	msg := fmt.Sprintf("pos (%.1f, %.1f)  lux %.3f  exposure %.3f  temp %.1fC\nWASD move, E toggle door",
		g.player.Pos.X, g.player.Pos.Y, light.Lux, g.bf.ExposureLux, temp)
	ebitenutil.DebugPrint(screen, msg)
}
