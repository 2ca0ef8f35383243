package script

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/floorgen/pkg/floor"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms floor Lisp source code before passing it
// to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals,
//     which would conflict with user-defined variables of the same
//     name.
//
//  2. Kebab-case to underscore: tile-floor -> tile_floor
//     zygomys does not allow hyphens in identifiers (it interprets
//     them as the subtraction operator). This converts kebab-case
//     identifiers to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line
// comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters (not
		// a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by
// preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string. Returns the
// keyword name (hyphens normalized to underscores) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return strings.ReplaceAll(str.S[len(kwPrefix):], "-", "_"), true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword
// argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during
// preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a
// Sexp. Handles both preprocessed keywords (__kw_herringbone) and
// plain strings ("herringbone"); hyphens normalize to underscores.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	name := strings.TrimPrefix(str.S, kwPrefix)
	return strings.ReplaceAll(name, "-", "_"), nil
}

// toWoodStyle converts a keyword or string to a floor.WoodStyle.
func toWoodStyle(s zygo.Sexp) (floor.WoodStyle, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected style keyword: %w", err)
	}
	switch name {
	case "regular":
		return floor.WoodRegular, nil
	case "parquet":
		return floor.WoodParquet, nil
	case "herringbone":
		return floor.WoodHerringbone, nil
	case "herringbone_parquet":
		return floor.WoodHerringboneParquet, nil
	}
	return 0, fmt.Errorf("invalid wood style %q, expected regular, parquet, herringbone, or herringbone-parquet", name)
}

// toTileStyle converts a keyword or string to a floor.TileStyle.
func toTileStyle(s zygo.Sexp) (floor.TileStyle, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected style keyword: %w", err)
	}
	switch name {
	case "regular":
		return floor.TileRegular, nil
	case "hopscotch":
		return floor.TileHopscotch, nil
	case "stepping_stone":
		return floor.TileSteppingStone, nil
	case "hexagon":
		return floor.TileHexagon, nil
	case "windmill":
		return floor.TileWindmill, nil
	}
	return 0, fmt.Errorf("invalid tile style %q, expected regular, hopscotch, stepping-stone, hexagon, or windmill", name)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// scriptState accumulates the configuration a script defines.
type scriptState struct {
	cfg     floor.Config
	defined bool
}

// floatField and friends bind keyword names to Config fields so both
// floor builtins share one parsing pass.
type fieldBinding struct {
	float *float64
	boolp *bool
	intp  *int
}

func bindCommon(cfg *floor.Config) map[string]fieldBinding {
	return map[string]fieldBinding{
		"width":              {float: &cfg.Width},
		"length":             {float: &cfg.Length},
		"thickness":          {float: &cfg.Thickness},
		"spacing":            {float: &cfg.Spacing},
		"vary_thickness":     {boolp: &cfg.VaryThickness},
		"thickness_variance": {float: &cfg.ThicknessVariance},
	}
}

func bindWood(cfg *floor.Config) map[string]fieldBinding {
	m := bindCommon(cfg)
	m["board_width"] = fieldBinding{float: &cfg.BoardWidth}
	m["vary_width"] = fieldBinding{boolp: &cfg.VaryWidth}
	m["width_variance"] = fieldBinding{float: &cfg.WidthVariance}
	m["width_spacing"] = fieldBinding{float: &cfg.WidthSpacing}
	m["board_length"] = fieldBinding{float: &cfg.BoardLength}
	m["short_board_length"] = fieldBinding{float: &cfg.ShortBoardLength}
	m["vary_length"] = fieldBinding{boolp: &cfg.VaryLength}
	m["length_variance"] = fieldBinding{float: &cfg.LengthVariance}
	m["length_spacing"] = fieldBinding{float: &cfg.LengthSpacing}
	m["max_boards"] = fieldBinding{intp: &cfg.MaxBoards}
	m["boards_in_group"] = fieldBinding{intp: &cfg.BoardsInGroup}
	return m
}

func bindTile(cfg *floor.Config) map[string]fieldBinding {
	m := bindCommon(cfg)
	m["tile_width"] = fieldBinding{float: &cfg.TileWidth}
	m["tile_length"] = fieldBinding{float: &cfg.TileLength}
	m["mortar_depth"] = fieldBinding{float: &cfg.MortarDepth}
	m["offset_tiles"] = fieldBinding{boolp: &cfg.OffsetTiles}
	m["random_offset"] = fieldBinding{boolp: &cfg.RandomOffset}
	m["offset"] = fieldBinding{float: &cfg.Offset}
	m["offset_variance"] = fieldBinding{float: &cfg.OffsetVariance}
	return m
}

// applyBindings writes keyword arguments through the field bindings,
// reporting unknown keywords and type mismatches.
func applyBindings(fn string, pa kwArgs, bindings map[string]fieldBinding) error {
	for name, val := range pa.kw {
		if name == "style" {
			continue
		}
		b, ok := bindings[name]
		if !ok {
			return fmt.Errorf("%s: unknown parameter :%s", fn, name)
		}
		switch {
		case b.float != nil:
			f, err := toFloat64(val)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", fn, name, err)
			}
			*b.float = f
		case b.boolp != nil:
			v, err := toBool(val)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", fn, name, err)
			}
			*b.boolp = v
		case b.intp != nil:
			n, err := toInt(val)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", fn, name, err)
			}
			*b.intp = n
		}
	}
	return nil
}

// registerBuiltins installs the floor DSL builtins into a zygomys
// environment. The builtins write into st, defining the configuration
// the script produces.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals.
func registerBuiltins(env *zygo.Zlisp, st *scriptState) {

	// -----------------------------------------------------------------------
	// (feet 20) / (inches 6) -> meters
	// -----------------------------------------------------------------------
	env.AddFunction("feet", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("feet: expected 1 argument, got %d", len(args))
		}
		f, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("feet: %w", err)
		}
		return &zygo.SexpFloat{Val: f * floor.Foot}, nil
	})

	env.AddFunction("inches", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("inches: expected 1 argument, got %d", len(args))
		}
		f, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("inches: %w", err)
		}
		return &zygo.SexpFloat{Val: f * floor.Inch}, nil
	})

	// -----------------------------------------------------------------------
	// (wood-floor :style :herringbone :width (feet 20) :length (feet 8)
	//             :board-width (inches 6) :vary-length true)
	// -----------------------------------------------------------------------
	env.AddFunction("wood_floor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		st.cfg.Material = floor.Wood

		if v, ok := pa.kw["style"]; ok {
			style, err := toWoodStyle(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("wood-floor: %w", err)
			}
			st.cfg.WoodStyle = style
		}
		if err := applyBindings("wood-floor", pa, bindWood(&st.cfg)); err != nil {
			return zygo.SexpNull, err
		}
		if err := st.cfg.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("wood-floor: %w", err)
		}

		st.defined = true
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (tile-floor :style :hexagon :tile-width (inches 12)
	//             :mortar-depth (inches 0.25))
	// -----------------------------------------------------------------------
	env.AddFunction("tile_floor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		st.cfg.Material = floor.Tile

		if v, ok := pa.kw["style"]; ok {
			style, err := toTileStyle(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("tile-floor: %w", err)
			}
			st.cfg.TileStyle = style
		}
		if err := applyBindings("tile-floor", pa, bindTile(&st.cfg)); err != nil {
			return zygo.SexpNull, err
		}
		if err := st.cfg.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("tile-floor: %w", err)
		}

		st.defined = true
		return zygo.SexpNull, nil
	})
}
