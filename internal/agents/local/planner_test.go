// internal/agents/local/planner_test.go
package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
)

func TestPlanner_DefaultOutline(t *testing.T) {
	agent, err := agents.GetAgent(agents.RolePlanner, "local", nil)
	require.NoError(t, err)
	planner := agent.(agents.Planner)

	plan, err := planner.Plan(testMeta(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Gravity", plan.SceneTitle)
	assert.Equal(t, "a treehouse", plan.Background)
	assert.Equal(t, []string{"intro", "concept", "reaction", "wrap"}, plan.Flow)
	assert.Equal(t, 8, plan.DialogueTurns)
	assert.Len(t, plan.CameraPlan, 4)
}

func TestPlanner_ConfiguredTurns(t *testing.T) {
	agent, err := agents.GetAgent(agents.RolePlanner, "local", map[string]string{"dialogue_turns": "4"})
	require.NoError(t, err)
	planner := agent.(agents.Planner)

	plan, err := planner.Plan(testMeta(), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.DialogueTurns)

	_, err = agents.GetAgent(agents.RolePlanner, "local", map[string]string{"dialogue_turns": "0"})
	assert.Error(t, err)
}

func TestResearcher_ReferencesForTopicAndSetting(t *testing.T) {
	agent, err := agents.GetAgent(agents.RoleResearcher, "local", nil)
	require.NoError(t, err)
	researcher := agent.(agents.Researcher)

	refs, err := researcher.Research(testMeta())
	require.NoError(t, err)

	require.Len(t, refs.References, 2)
	assert.Contains(t, refs.References[0], "Gravity")
	assert.Contains(t, refs.References[1], "a treehouse")
	assert.NotNil(t, refs.Images)

	_, err = researcher.Research(nil)
	assert.Error(t, err)
}

func TestRegistry_UnknownImplementation(t *testing.T) {
	_, err := agents.GetAgent(agents.RolePlanner, "missing", nil)
	assert.ErrorIs(t, err, agents.ErrUnknownAgent)
}
