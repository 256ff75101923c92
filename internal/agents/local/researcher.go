// internal/agents/local/researcher.go
package local

import (
	"fmt"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

func init() {
	agents.Register(agents.RoleResearcher, "local", func() agents.Agent {
		return &Researcher{}
	})
}

// Researcher is an offline stand-in for a web-search agent. It returns
// canned reference lines so the planner always has background material.
type Researcher struct{}

func (a *Researcher) Initialize(config map[string]string) error {
	return nil
}

func (a *Researcher) GetName() string {
	return "local"
}

// Research produces reference notes about the topic and its setting.
func (a *Researcher) Research(meta *models.SceneMeta) (*models.ReferenceSet, error) {
	if meta == nil {
		return nil, fmt.Errorf("research requires scene metadata")
	}

	return &models.ReferenceSet{
		References: []string{
			fmt.Sprintf("Facts about %s gleaned from a web search.", meta.SceneTopic),
			fmt.Sprintf("Information about %s for background.", meta.Setting),
		},
		Images: []string{},
	}, nil
}
