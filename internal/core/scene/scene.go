package scene

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/tilephys/internal/core/level"
	"github.com/zeusync/tilephys/internal/core/models"
	"github.com/zeusync/tilephys/pkg/vector"
)

var ErrLayerNotFound = errors.New("tile layer not found")

// Scene describes the initial contents of a level in tile units.
type Scene struct {
	Name    string   `yaml:"name"`
	Player  *Point   `yaml:"player"`
	Crates  []Point  `yaml:"crates"`
	Walls   []Rect   `yaml:"walls"`
	Hazards []Hazard `yaml:"hazards"`
	Tilemap *Tilemap `yaml:"tilemap"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vec() vector.Vec2 { return vector.New(p.X, p.Y) }

type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Hazard is a damaging area. Damage defaults to 1.
type Hazard struct {
	Rect `yaml:",inline"`

	Damage int `yaml:"damage"`
}

// Tilemap points at a Tiled map whose named tile layer becomes walls.
type Tilemap struct {
	Path  string `yaml:"path"`
	Layer string `yaml:"layer"`
}

func Load(r io.Reader) (*Scene, error) {
	s := &Scene{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (s *Scene) validate() error {
	for i, w := range s.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("wall %d: non-positive size %gx%g", i, w.W, w.H)
		}
	}
	for i, h := range s.Hazards {
		if h.W <= 0 || h.H <= 0 {
			return fmt.Errorf("hazard %d: non-positive size %gx%g", i, h.W, h.H)
		}
		if h.Damage < 0 {
			return fmt.Errorf("hazard %d: negative damage %d", i, h.Damage)
		}
	}
	if s.Tilemap != nil && s.Tilemap.Path == "" {
		return errors.New("tilemap: empty path")
	}
	return nil
}

// Populate adds the scene's entities to l. The player goes first, then crates,
// hand-placed walls, tile walls and hazards. The tilemap, if any, is read from
// fsys. The returned player is nil when the scene has none.
func (s *Scene) Populate(l *level.Level, fsys fs.FS) (*models.Player, error) {
	var player *models.Player
	if s.Player != nil {
		player = models.NewPlayer(s.Player.Vec())
		l.AddDynamic(player)
	}
	for _, c := range s.Crates {
		l.AddDynamic(models.NewCrate(c.Vec()))
	}
	for _, w := range s.Walls {
		l.AddStatic(models.NewWall(w.X, w.Y, w.W, w.H))
	}
	if s.Tilemap != nil {
		walls, err := LoadTiles(fsys, s.Tilemap.Path, s.Tilemap.Layer)
		if err != nil {
			return nil, err
		}
		for _, w := range walls {
			l.AddStatic(w)
		}
	}
	for _, h := range s.Hazards {
		damage := h.Damage
		if damage == 0 {
			damage = 1
		}
		l.AddStatic(models.NewHazard(h.X, h.Y, h.W, h.H, damage))
	}
	return player, nil
}

// LoadTiles reads a TMX map from fsys and returns one 1x1 wall per non-empty
// tile of the named layer, in row-major order. An empty layer name picks the
// first tile layer.
func LoadTiles(fsys fs.FS, path, layer string) ([]*models.Wall, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	for _, l := range levelMap.Layers {
		if layer != "" && l.Name != layer {
			continue
		}
		var walls []*models.Wall
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := l.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				walls = append(walls, models.NewWall(float64(x), float64(y), 1, 1))
			}
		}
		return walls, nil
	}
	return nil, fmt.Errorf("%s: %q: %w", path, layer, ErrLayerNotFound)
}
