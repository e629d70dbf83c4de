package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/shapes"
	"github.com/lafriks/go-tiled"
)

// Object group names recognised in level files.
const (
	GroupPlatforms  = "Platforms"
	GroupMorphZones = "MorphZones"
	GroupExit       = "Exit"
	GroupSpawn      = "Spawn"
	GroupLabels     = "Labels"
)

// LoadLevel parses a TMX file and returns a validated level. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level, err := fromMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", tmxPath, err)
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", tmxPath, err)
	}
	return level, nil
}

func fromMap(m *tiled.Map) (*Level, error) {
	var errs []error

	level := &Level{
		ID:          m.Properties.GetInt("id"),
		Name:        m.Properties.GetString("name"),
		Description: m.Properties.GetString("description"),
		Width:       m.Width * m.TileWidth,
		Height:      m.Height * m.TileHeight,
	}

	required, err := shapes.Parse(m.Properties.GetString("required_shape"))
	if err != nil {
		errs = append(errs, fmt.Errorf("required_shape: %w", err))
	}
	level.RequiredShape = required

	var haveExit, haveSpawn bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				kind, err := parseKind(objectClass(o))
				if err != nil {
					errs = append(errs, fmt.Errorf("platform %d: %w", o.ID, err))
					continue
				}
				level.Platforms = append(level.Platforms, Platform{Rect: objectRect(o), Kind: kind})
			}
		case GroupMorphZones:
			for _, o := range og.Objects {
				shape, err := shapes.Parse(o.Properties.GetString("shape"))
				if err != nil {
					errs = append(errs, fmt.Errorf("morph zone %d: %w", o.ID, err))
					continue
				}
				level.MorphZones = append(level.MorphZones, MorphZone{Rect: objectRect(o), Shape: shape})
			}
		case GroupExit:
			if len(og.Objects) > 0 {
				level.Exit = objectRect(og.Objects[0])
				haveExit = true
			}
		case GroupSpawn:
			if len(og.Objects) > 0 {
				level.Spawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				haveSpawn = true
			}
		case GroupLabels:
			for _, o := range og.Objects {
				level.Labels = append(level.Labels, Label{X: o.X, Y: o.Y, Text: o.Properties.GetString("text")})
			}
		}
	}

	if !haveExit {
		errs = append(errs, ErrMissingExit)
	}
	if !haveSpawn {
		errs = append(errs, ErrMissingSpawn)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return level, nil
}

// objectClass prefers the Tiled 1.9+ class attribute and falls back to type.
func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type
}

func objectRect(o *tiled.Object) gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.Width, o.Height)
}

func parseKind(class string) (PlatformKind, error) {
	switch class {
	case "solid":
		return Solid, nil
	case "hazard":
		return Hazard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, class)
}

// LoadAll loads every .tmx file in levelsDir within fsys and returns the
// levels ordered by id.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make([]*Level, 0, len(matches))
	seen := make(map[int]string, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[level.ID]; ok {
			return nil, fmt.Errorf("%s and %s: %w %d", other, path, ErrDuplicateID, level.ID)
		}
		seen[level.ID] = path
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}
