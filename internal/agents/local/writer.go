// internal/agents/local/writer.go
package local

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

func init() {
	agents.Register(agents.RoleWriter, "local", func() agents.Agent {
		return &Writer{
			secondsPerWord: defaultSecondsPerWord,
			minLineSeconds: defaultMinLineSeconds,
		}
	})
}

const (
	defaultSecondsPerWord = 0.15
	defaultMinLineSeconds = 1.5
)

// Writer composes dialogue lines by cycling through the cast and
// walking the planned flow phases.
type Writer struct {
	secondsPerWord float64
	minLineSeconds float64
}

func (a *Writer) Initialize(config map[string]string) error {
	if v, exists := config["seconds_per_word"]; exists && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid seconds_per_word %q", v)
		}
		a.secondsPerWord = f
	}
	if v, exists := config["min_line_seconds"]; exists && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid min_line_seconds %q", v)
		}
		a.minLineSeconds = f
	}
	return nil
}

func (a *Writer) GetName() string {
	return "local"
}

// WriteDialogue emits one line per planned turn. Blocks carry no id;
// the assembler numbers them in emission order.
func (a *Writer) WriteDialogue(meta *models.SceneMeta, plan *models.ScenePlan) ([]*models.DialogueBlock, error) {
	if meta == nil || plan == nil {
		return nil, fmt.Errorf("dialogue writing requires metadata and a plan")
	}
	if len(meta.Characters) == 0 {
		return nil, fmt.Errorf("dialogue writing requires at least one character")
	}
	if plan.DialogueTurns <= 0 {
		return nil, fmt.Errorf("plan has no dialogue turns")
	}

	lines := make([]*models.DialogueBlock, 0, plan.DialogueTurns)

	for i := 1; i <= plan.DialogueTurns; i++ {
		speaker := meta.Characters[(i-1)%len(meta.Characters)]
		phase := phaseForTurn(plan.Flow, i, plan.DialogueTurns)
		text := a.lineForPhase(phase, i, meta)

		lines = append(lines, &models.DialogueBlock{
			Type:      models.BlockTypeDialogue,
			Character: speaker.Name,
			Traits:    speaker.Traits,
			Emotion:   emotionForPhase(phase),
			Text:      text,
			Duration:  a.EstimateDuration(text),
			VoiceURL:  "",
		})
	}

	return lines, nil
}

// EstimateDuration estimates how long a line takes to speak. Longer
// text never yields a shorter estimate, and the floor keeps every
// estimate above zero.
func (a *Writer) EstimateDuration(text string) float64 {
	words := len(strings.Fields(text))
	duration := math.Max(a.minLineSeconds, a.secondsPerWord*float64(words))
	return math.Round(duration*100) / 100
}

// phaseForTurn maps turn i (1-based) onto the flow phases in order,
// spreading turns evenly across them.
func phaseForTurn(flow []string, turn, totalTurns int) string {
	if len(flow) == 0 {
		return "concept"
	}
	idx := (turn - 1) * len(flow) / totalTurns
	if idx >= len(flow) {
		idx = len(flow) - 1
	}
	return flow[idx]
}

// lineForPhase composes the spoken text for a turn. Wording is free to
// change; the structural shape of the output must not.
func (a *Writer) lineForPhase(phase string, turn int, meta *models.SceneMeta) string {
	topic := meta.SceneTopic

	switch phase {
	case "intro":
		if meta.Setting != "unknown" {
			return fmt.Sprintf("Here we are in %s, and today we are talking about %s.", meta.Setting, topic)
		}
		return fmt.Sprintf("Let's begin. Today we are talking about %s.", topic)
	case "concept":
		return fmt.Sprintf("Now for the key idea behind %s, one step at a time.", topic)
	case "reaction":
		return fmt.Sprintf("That really changes how I think about %s.", topic)
	case "wrap":
		return fmt.Sprintf("So that is %s in a nutshell.", topic)
	default:
		return fmt.Sprintf("This is line %d about %s.", turn, topic)
	}
}

// emotionForPhase picks a delivery note for the line.
func emotionForPhase(phase string) string {
	switch phase {
	case "concept":
		return "thoughtful"
	case "reaction":
		return "curious"
	default:
		return "neutral"
	}
}
