// internal/agents/local/planner.go
package local

import (
	"fmt"
	"strconv"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

func init() {
	agents.Register(agents.RolePlanner, "local", func() agents.Agent {
		return &Planner{
			dialogueTurns: defaultDialogueTurns,
		}
	})
}

// Eight turns fit a short two-minute conversation scene.
const defaultDialogueTurns = 8

// Planner sketches a fixed four-phase outline for the scene.
type Planner struct {
	dialogueTurns int
}

func (a *Planner) Initialize(config map[string]string) error {
	if v, exists := config["dialogue_turns"]; exists && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid dialogue_turns %q", v)
		}
		a.dialogueTurns = n
	}
	return nil
}

func (a *Planner) GetName() string {
	return "local"
}

// Plan outlines the scene from the interpreted metadata. References are
// accepted so a smarter planner can weave them in later.
func (a *Planner) Plan(meta *models.SceneMeta, refs *models.ReferenceSet) (*models.ScenePlan, error) {
	if meta == nil {
		return nil, fmt.Errorf("planning requires scene metadata")
	}

	return &models.ScenePlan{
		SceneTitle:    meta.SceneTopic,
		Background:    meta.Setting,
		Flow:          []string{"intro", "concept", "reaction", "wrap"},
		DialogueTurns: a.dialogueTurns,
		CameraPlan:    []string{"wide", "close-up", "medium", "wide"},
	}, nil
}
