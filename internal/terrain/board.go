package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
)

// ErrMalformedBoard is returned for board files that cannot be parsed.
var ErrMalformedBoard = errors.New("malformed board")

// ─── Board Parser ───────────────────────────────────────────────────────────
// MegaMek .board files:
//
//	size 16 17
//	hex 0101 0 "woods:2;foliage_elev:2" "grass"
//	hex 0102 1 "building:2:8;bldg_elev:3;bldg_cf:40" ""
//	end

// LoadBoard parses the board file at path.
func LoadBoard(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseBoard(f)
}

// ParseBoard reads a MegaMek board. Cosmetic features are skipped.
func ParseBoard(r io.Reader) (*Map, error) {
	var board *Map
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line == "end" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "size "):
			parts := strings.Fields(line)
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedBoard, lineNo, line)
			}
			w, errW := strconv.Atoi(parts[1])
			h, errH := strconv.Atoi(parts[2])
			if errW != nil || errH != nil || w < 1 || h < 1 {
				return nil, fmt.Errorf("%w: line %d: bad size %q", ErrMalformedBoard, lineNo, line)
			}
			board = NewMap(w, h)

		case strings.HasPrefix(line, "hex "):
			if board == nil {
				return nil, fmt.Errorf("%w: line %d: hex before size", ErrMalformedBoard, lineNo)
			}
			c, hex, err := parseHexLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			board.Set(c, hex)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("%w: missing size line", ErrMalformedBoard)
	}
	return board, nil
}

func parseHexLine(line string) (hexgrid.Coord, Hex, error) {
	// Format: hex XXYY elevation "terrain;terrain" "theme"
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return hexgrid.Coord{}, Hex{}, fmt.Errorf("%w: %q", ErrMalformedBoard, line)
	}

	o, err := hexgrid.ParseOffset(parts[1])
	if err != nil {
		return hexgrid.Coord{}, Hex{}, err
	}
	elev, err := strconv.Atoi(parts[2])
	if err != nil {
		return hexgrid.Coord{}, Hex{}, fmt.Errorf("%w: elevation %q", ErrMalformedBoard, parts[2])
	}

	hex := Hex{Elevation: elev}
	if len(parts) >= 4 {
		hex.Features = parseFeatures(strings.Trim(parts[3], "\""))
	}
	return o.ToAxial(), hex, nil
}

func parseFeatures(s string) []Feature {
	var feats []Feature
	bldgElev, bldgCF := -1, 0
	for _, raw := range strings.Split(s, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		// Format: "type:level:extra" or "type:level"
		parts := strings.Split(raw, ":")
		name := strings.ToLower(parts[0])
		level := 1
		if len(parts) >= 2 {
			if v, err := strconv.Atoi(parts[1]); err == nil {
				level = v
			}
		}

		switch name {
		case "bldg_elev":
			bldgElev = level
			continue
		case "bldg_cf":
			bldgCF = level
			continue
		}
		t, ok := ParseType(name)
		if !ok {
			// ground_fluff, foliage_elev, bridge and the like are cosmetic
			continue
		}
		feats = append(feats, Feature{Type: t, Level: level})
	}

	for i := range feats {
		if feats[i].Type != Building {
			continue
		}
		if bldgElev >= 0 {
			feats[i].Level = bldgElev
		}
		feats[i].ConstructionFactor = bldgCF
	}
	return feats
}
