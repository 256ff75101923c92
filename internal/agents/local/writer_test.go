// internal/agents/local/writer_test.go
package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

func testMeta() *models.SceneMeta {
	return &models.SceneMeta{
		SceneTopic: "Gravity",
		Setting:    "a treehouse",
		SceneType:  "conversation",
		Characters: []models.Character{
			{Name: "Teacher", Role: "teacher", Traits: map[string]string{}},
			{Name: "Student", Role: "student", Traits: map[string]string{}},
		},
		TargetLengthSeconds: 150,
	}
}

func testPlan(turns int) *models.ScenePlan {
	return &models.ScenePlan{
		SceneTitle:    "Gravity",
		Background:    "a treehouse",
		Flow:          []string{"intro", "concept", "reaction", "wrap"},
		DialogueTurns: turns,
		CameraPlan:    []string{"wide", "close-up", "medium", "wide"},
	}
}

func newWriter(t *testing.T, config map[string]string) agents.Writer {
	t.Helper()

	agent, err := agents.GetAgent(agents.RoleWriter, "local", config)
	require.NoError(t, err)
	return agent.(agents.Writer)
}

func TestWriter_TurnCountAndCycling(t *testing.T) {
	writer := newWriter(t, nil)

	lines, err := writer.WriteDialogue(testMeta(), testPlan(8))
	require.NoError(t, err)
	require.Len(t, lines, 8)

	for i, line := range lines {
		want := "Teacher"
		if i%2 == 1 {
			want = "Student"
		}
		assert.Equal(t, want, line.Character, "line %d speaker", i)
		assert.NotEmpty(t, line.Text)
		assert.NotEmpty(t, line.Emotion)
		assert.Equal(t, models.BlockTypeDialogue, line.Type)
	}
}

func TestWriter_DurationsPositive(t *testing.T) {
	writer := newWriter(t, nil)

	lines, err := writer.WriteDialogue(testMeta(), testPlan(8))
	require.NoError(t, err)

	for _, line := range lines {
		assert.Greater(t, line.Duration, 0.0)
	}
}

func TestWriter_DurationMonotonicInTextLength(t *testing.T) {
	writer := newWriter(t, nil).(*Writer)

	short := writer.EstimateDuration("One two three.")
	long := writer.EstimateDuration("One two three four five six seven eight nine ten eleven twelve thirteen fourteen.")

	assert.Greater(t, short, 0.0)
	assert.GreaterOrEqual(t, long, short)
}

func TestWriter_DurationFloor(t *testing.T) {
	writer := newWriter(t, nil).(*Writer)

	// A single word sits below the floor
	assert.Equal(t, 1.5, writer.EstimateDuration("Hi."))
}

func TestWriter_ConfigOverrides(t *testing.T) {
	writer := newWriter(t, map[string]string{
		"seconds_per_word": "1.0",
		"min_line_seconds": "0.5",
	}).(*Writer)

	assert.Equal(t, 3.0, writer.EstimateDuration("one two three"))

	_, err := agents.GetAgent(agents.RoleWriter, "local", map[string]string{
		"seconds_per_word": "-1",
	})
	assert.Error(t, err)
}

func TestWriter_RejectsBadInputs(t *testing.T) {
	writer := newWriter(t, nil)

	_, err := writer.WriteDialogue(nil, testPlan(4))
	assert.Error(t, err)

	meta := testMeta()
	meta.Characters = nil
	_, err = writer.WriteDialogue(meta, testPlan(4))
	assert.Error(t, err)

	_, err = writer.WriteDialogue(testMeta(), testPlan(0))
	assert.Error(t, err)
}
