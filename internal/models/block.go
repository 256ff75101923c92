// internal/models/block.go
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockType discriminates the two ∞-VScript block variants.
type BlockType string

const (
	BlockTypeDialogue BlockType = "dialogue"
	BlockTypeAction   BlockType = "action"
)

// Action timing vocabulary, relative to the adjacent dialogue line.
const (
	TimingBefore = "before"
	TimingDuring = "during"
	TimingAfter  = "after"
)

// TimingVocabulary lists every timing value an action block may carry.
// Pass this table around instead of mutating it.
func TimingVocabulary() []string {
	return []string{TimingBefore, TimingDuring, TimingAfter}
}

// IsValidTiming reports whether timing belongs to the controlled vocabulary.
func IsValidTiming(timing string) bool {
	switch timing {
	case TimingBefore, TimingDuring, TimingAfter:
		return true
	}
	return false
}

// SceneBlock is one entry of a generated scene script.
type SceneBlock interface {
	BlockID() string
	Kind() BlockType
	Validate() error
}

// DialogueBlock is a spoken line in the ∞-VScript format.
type DialogueBlock struct {
	ID        string            `json:"id"`
	Type      BlockType         `json:"type"`
	Character string            `json:"character"`
	Traits    map[string]string `json:"traits"`
	Emotion   string            `json:"emotion"`
	Text      string            `json:"text"`
	Duration  float64           `json:"duration"`
	VoiceURL  string            `json:"voice_url"`
}

func (b *DialogueBlock) BlockID() string { return b.ID }
func (b *DialogueBlock) Kind() BlockType { return BlockTypeDialogue }

// Validate checks the dialogue variant invariants.
func (b *DialogueBlock) Validate() error {
	if b.Type != BlockTypeDialogue {
		return fmt.Errorf("dialogue block %q has type %q", b.ID, b.Type)
	}
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("dialogue block is missing an id")
	}
	if strings.TrimSpace(b.Character) == "" {
		return fmt.Errorf("dialogue block %q is missing a character", b.ID)
	}
	if strings.TrimSpace(b.Text) == "" {
		return fmt.Errorf("dialogue block %q is missing text", b.ID)
	}
	if b.Duration <= 0 {
		return fmt.Errorf("dialogue block %q has non-positive duration %v", b.ID, b.Duration)
	}
	return nil
}

// ActionBlock is a stage direction in the ∞-VScript format.
type ActionBlock struct {
	ID          string    `json:"id"`
	Type        BlockType `json:"type"`
	Description string    `json:"description"`
	Timing      string    `json:"timing"`
}

func (b *ActionBlock) BlockID() string { return b.ID }
func (b *ActionBlock) Kind() BlockType { return BlockTypeAction }

// Validate checks the action variant invariants.
func (b *ActionBlock) Validate() error {
	if b.Type != BlockTypeAction {
		return fmt.Errorf("action block %q has type %q", b.ID, b.Type)
	}
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("action block is missing an id")
	}
	if strings.TrimSpace(b.Description) == "" {
		return fmt.Errorf("action block %q is missing a description", b.ID)
	}
	if !IsValidTiming(b.Timing) {
		return fmt.Errorf("action block %q has timing %q outside the vocabulary", b.ID, b.Timing)
	}
	return nil
}

// Script is the ordered block sequence produced for one prompt.
type Script []SceneBlock

// Validate enforces the whole-script invariants: a non-empty sequence
// with at least one block of each variant, well-formed blocks, and
// unique strictly increasing integer ids in emission order.
func (s Script) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("script has no blocks")
	}

	var dialogueCount, actionCount int
	lastID := 0

	for i, block := range s {
		if block == nil {
			return fmt.Errorf("script position %d is nil", i)
		}
		if err := block.Validate(); err != nil {
			return err
		}

		id, err := strconv.Atoi(block.BlockID())
		if err != nil || id <= 0 {
			return fmt.Errorf("block %q id is not a positive integer", block.BlockID())
		}
		if id <= lastID {
			return fmt.Errorf("block id %d does not increase after %d", id, lastID)
		}
		lastID = id

		switch block.Kind() {
		case BlockTypeDialogue:
			dialogueCount++
		case BlockTypeAction:
			actionCount++
		default:
			return fmt.Errorf("block %q has unknown type %q", block.BlockID(), block.Kind())
		}
	}

	if dialogueCount == 0 {
		return fmt.Errorf("script has no dialogue blocks")
	}
	if actionCount == 0 {
		return fmt.Errorf("script has no action blocks")
	}
	return nil
}
