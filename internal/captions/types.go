package captions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"cadence/internal/services"
)

var validate = validator.New()

// WordMetadata carries per-word rendering flags.
type WordMetadata struct {
	IsHighlight bool `json:"isHighlight"`
}

// Word is one timed token. Start is relative to the caption.
type Word struct {
	Text          string       `json:"text"`
	Start         float64      `json:"start"`
	Duration      float64      `json:"duration" validate:"gte=0"`
	AbsoluteStart float64      `json:"absoluteStart" validate:"gte=0"`
	AbsoluteEnd   float64      `json:"absoluteEnd" validate:"gtefield=AbsoluteStart"`
	Confidence    float64      `json:"confidence"`
	SourceIndex   int          `json:"sourceIndex"`
	Metadata      WordMetadata `json:"metadata"`
}

// Metadata holds author hints and processing bookkeeping for a caption.
type Metadata struct {
	Keyword    string   `json:"keyword,omitempty"`
	SplitParts []string `json:"splitParts,omitempty"`
	// ExtendedBy is the gap-closing extension already applied, in seconds.
	ExtendedBy float64 `json:"extendedBy,omitempty"`
	// Presplit is set once SplitWords has run over the caption's words.
	Presplit bool `json:"presplit,omitempty"`
}

// Caption is one utterance with absolute timing.
type Caption struct {
	Text          string   `json:"text"`
	AbsoluteStart float64  `json:"absoluteStart" validate:"gte=0"`
	AbsoluteEnd   float64  `json:"absoluteEnd" validate:"gtefield=AbsoluteStart"`
	Duration      float64  `json:"duration" validate:"gte=0"`
	Words         []Word   `json:"words" validate:"dive"`
	Metadata      Metadata `json:"metadata"`
}

// Part is a contiguous group of a caption's words placed together on screen.
type Part struct {
	Words    []Word  `json:"words"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Text joins the part's word texts with single spaces.
func (p Part) Text() string {
	texts := make([]string, len(p.Words))
	for i, w := range p.Words {
		texts[i] = w.Text
	}
	return strings.Join(texts, " ")
}

// Processed is a caption after emphasis together with its parts.
type Processed struct {
	Caption Caption `json:"caption"`
	Parts   []Part  `json:"parts"`
}

// presplit returns a copy of c whose words have been through SplitWords exactly once.
func presplit(c Caption) Caption {
	out := c.Clone()
	if !c.Metadata.Presplit {
		out.Words = SplitWords(c.Words)
		out.Metadata.Presplit = true
	}
	return out
}

// Clone returns a deep copy of c.
func (c Caption) Clone() Caption {
	out := c
	out.Words = append([]Word(nil), c.Words...)
	out.Metadata.SplitParts = append([]string(nil), c.Metadata.SplitParts...)
	return out
}

// NewCaption checks transcript ordering and timing, then applies the sub-word
// split. The returned caption shares no slices with c.
func NewCaption(c Caption) (Caption, error) {
	if err := validate.Struct(c); err != nil {
		return Caption{}, services.Wrap(services.ErrValidation, "captions", "new caption", "invalid caption", err)
	}
	for i := 1; i < len(c.Words); i++ {
		if c.Words[i].AbsoluteStart < c.Words[i-1].AbsoluteStart {
			msg := fmt.Sprintf("word %d (%q) starts before word %d", i, c.Words[i].Text, i-1)
			return Caption{}, services.Wrap(services.ErrValidation, "captions", "new caption", msg, nil)
		}
	}
	return presplit(c), nil
}

// DecodeTranscript reads a JSON array of captions, or an object with a
// "captions" array, and passes each through NewCaption.
func DecodeTranscript(r io.Reader) ([]Caption, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, services.Wrap(services.ErrUnavailable, "captions", "decode", "read transcript", err)
	}
	data = bytes.TrimSpace(data)

	var raw []Caption
	if len(data) > 0 && data[0] == '{' {
		var doc struct {
			Captions []Caption `json:"captions"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, services.Wrap(services.ErrValidation, "captions", "decode", "malformed transcript JSON", err)
		}
		raw = doc.Captions
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, services.Wrap(services.ErrValidation, "captions", "decode", "malformed transcript JSON", err)
	}

	out := make([]Caption, 0, len(raw))
	for i, c := range raw {
		built, err := NewCaption(c)
		if err != nil {
			return nil, fmt.Errorf("caption %d: %w", i, err)
		}
		out = append(out, built)
	}
	return out, nil
}
