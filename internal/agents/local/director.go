// internal/agents/local/director.go
package local

import (
	"fmt"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

func init() {
	agents.Register(agents.RoleDirector, "local", func() agents.Agent {
		return &Director{}
	})
}

// Director attaches stage directions around the written dialogue.
type Director struct{}

func (a *Director) Initialize(config map[string]string) error {
	return nil
}

func (a *Director) GetName() string {
	return "local"
}

// DirectActions returns a scene-setting action placed before the first
// line, plus one gesture action following each dialogue line.
func (a *Director) DirectActions(meta *models.SceneMeta, dialogue []*models.DialogueBlock) (*models.ActionBlock, []*models.ActionBlock, error) {
	if meta == nil {
		return nil, nil, fmt.Errorf("directing requires scene metadata")
	}
	if len(dialogue) == 0 {
		return nil, nil, fmt.Errorf("directing requires at least one dialogue line")
	}

	opening := &models.ActionBlock{
		Type:        models.BlockTypeAction,
		Description: a.openingDescription(meta, dialogue[0]),
		Timing:      models.TimingBefore,
	}

	perLine := make([]*models.ActionBlock, 0, len(dialogue))
	for _, line := range dialogue {
		perLine = append(perLine, &models.ActionBlock{
			Type:        models.BlockTypeAction,
			Description: fmt.Sprintf("%s gestures while speaking.", line.Character),
			Timing:      models.TimingAfter,
		})
	}

	return opening, perLine, nil
}

func (a *Director) openingDescription(meta *models.SceneMeta, first *models.DialogueBlock) string {
	if meta.Setting != "unknown" {
		return fmt.Sprintf("The scene opens in %s.", meta.Setting)
	}
	return fmt.Sprintf("The scene opens as %s steps forward.", first.Character)
}
