// internal/agents/local/interpreter.go
package local

import (
	"fmt"
	"strings"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

func init() {
	agents.Register(agents.RoleInterpreter, "local", func() agents.Agent {
		return &Interpreter{
			targetLengthSeconds: defaultTargetLengthSeconds,
		}
	})
}

const defaultTargetLengthSeconds = 150

// Interpreter parses the user prompt to determine topic, setting and
// characters without calling out to any model.
type Interpreter struct {
	targetLengthSeconds int
}

func (a *Interpreter) Initialize(config map[string]string) error {
	if v, exists := config["target_length_seconds"]; exists && v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n <= 0 {
			return fmt.Errorf("invalid target_length_seconds %q", v)
		}
		a.targetLengthSeconds = n
	}
	return nil
}

func (a *Interpreter) GetName() string {
	return "local"
}

// Interpret splits "<topic> in <setting>" prompts and detects the cast
// from role keywords. Prompts that name no known role get a Narrator.
func (a *Interpreter) Interpret(prompt string) (*models.SceneMeta, error) {
	clean := strings.TrimSpace(prompt)
	if clean == "" {
		return nil, fmt.Errorf("cannot derive fragments from an empty prompt")
	}

	topic := strings.TrimRight(clean, ".")
	setting := "unknown"

	if idx := strings.Index(clean, " in "); idx >= 0 {
		topic = strings.TrimRight(clean[:idx], ".")
		setting = strings.TrimRight(clean[idx+len(" in "):], ".")
	}

	var characters []models.Character
	lower := strings.ToLower(clean)
	if strings.Contains(lower, "teacher") {
		characters = append(characters, models.Character{Name: "Teacher", Role: "teacher", Traits: map[string]string{}})
	}
	if strings.Contains(lower, "student") {
		characters = append(characters, models.Character{Name: "Student", Role: "student", Traits: map[string]string{}})
	}
	if len(characters) == 0 {
		characters = append(characters, models.Character{Name: "Narrator", Role: "narrator", Traits: map[string]string{}})
	}

	return &models.SceneMeta{
		SceneTopic:          capitalize(topic),
		Setting:             setting,
		SceneType:           "conversation",
		Characters:          characters,
		TargetLengthSeconds: a.targetLengthSeconds,
	}, nil
}

// capitalize upper-cases the first byte so topics read as titles.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
