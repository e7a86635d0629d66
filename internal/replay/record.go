// Package replay keeps deterministic records of resolved attacks. A record
// holds the seed and the dice faces drawn, so the same resolution can be
// reproduced and checked later.
package replay

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/hexcombat/internal/dice"
	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
	"github.com/JustinWhittecar/hexcombat/internal/rangelos"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

var (
	ErrUnknownKind = errors.New("unknown result kind")
	ErrNoResult    = errors.New("record has no result")
	ErrMismatch    = errors.New("replayed result differs from record")
	ErrNotFound    = errors.New("replay not found")
)

// Record is one resolved attack with everything needed to re-run it.
type Record struct {
	ID         uuid.UUID             `json:"id"`
	Seed       uint64                `json:"seed"`
	CreatedAt  time.Time             `json:"createdAt"`
	Shooter    hexgrid.UnitPosition  `json:"shooter"`
	Target     hexgrid.UnitPosition  `json:"target"`
	Assessment *rangelos.Assessment  `json:"assessment,omitempty"`
	ToHit      *weapons.TargetNumber `json:"toHit,omitempty"`
	Attack     weapons.Attack        `json:"attack"`
	Faces      []int                 `json:"faces,omitempty"`
	Result     weapons.Result        `json:"-"`
}

// New stamps a record with a fresh id and the current time.
func New(seed uint64, attack weapons.Attack, result weapons.Result) *Record {
	return &Record{
		ID:        uuid.New(),
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
		Attack:    attack,
		Result:    result,
	}
}

type envelope struct {
	Kind weapons.Kind    `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type recordAlias Record

type recordJSON struct {
	*recordAlias
	Result *envelope `json:"result,omitempty"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{recordAlias: (*recordAlias)(&r)}
	if r.Result != nil {
		data, err := json.Marshal(r.Result)
		if err != nil {
			return nil, err
		}
		out.Result = &envelope{Kind: r.Result.Kind(), Data: data}
	}
	return json.Marshal(out)
}

func (r *Record) UnmarshalJSON(b []byte) error {
	in := recordJSON{recordAlias: (*recordAlias)(r)}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	r.Result = nil
	if in.Result == nil {
		return nil
	}
	res, err := DecodeResult(in.Result.Kind, in.Result.Data)
	if err != nil {
		return err
	}
	r.Result = res
	return nil
}

// DecodeResult unmarshals data into the concrete result type for kind.
func DecodeResult(kind weapons.Kind, data []byte) (weapons.Result, error) {
	var res weapons.Result
	switch kind {
	case weapons.KindStandard:
		res = &weapons.StandardResult{}
	case weapons.KindCluster:
		res = &weapons.ClusterResult{}
	case weapons.KindStreak:
		res = &weapons.StreakResult{}
	case weapons.KindUltraAC:
		res = &weapons.UltraACResult{}
	case weapons.KindRotaryAC:
		res = &weapons.RotaryACResult{}
	case weapons.KindLBX:
		res = &weapons.LBXResult{}
	case weapons.KindAMS:
		res = &weapons.AMSResult{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := json.Unmarshal(data, res); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", kind, err)
	}
	return res, nil
}

// Encode serializes rec as gzip-compressed JSON.
func Encode(rec *Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal replay: %w", err)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, fmt.Errorf("compress replay: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("compress replay: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode is the inverse of Encode.
func Decode(data []byte) (*Record, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress replay: %w", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("decompress replay: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal replay: %w", err)
	}
	return &rec, nil
}

// Rerun resolves the recorded attack again. Recorded faces take priority;
// without them the seed drives a fresh PCG roller.
func Rerun(e *weapons.Engine, rec *Record) (weapons.Result, error) {
	var r dice.Roller
	if len(rec.Faces) > 0 {
		r = dice.Sequence(rec.Faces...)
	} else {
		r = dice.NewSeeded(rec.Seed)
	}
	return e.Resolve(r, rec.Attack)
}

// Verify re-runs rec and checks the result serializes to the same bytes.
func Verify(e *weapons.Engine, rec *Record) error {
	if rec.Result == nil {
		return ErrNoResult
	}
	got, err := Rerun(e, rec)
	if err != nil {
		return fmt.Errorf("rerun %s: %w", rec.ID, err)
	}
	want, err := json.Marshal(rec.Result)
	if err != nil {
		return err
	}
	have, err := json.Marshal(got)
	if err != nil {
		return err
	}
	if got.Kind() != rec.Result.Kind() || !bytes.Equal(want, have) {
		return fmt.Errorf("%w: %s", ErrMismatch, rec.ID)
	}
	return nil
}
