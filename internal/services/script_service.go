// internal/services/script_service.go
package services

import (
	"strconv"
	"strings"

	"github.com/SidharthAnand04/infiniti-v/internal/agents"
	"github.com/SidharthAnand04/infiniti-v/internal/config"
	apperrors "github.com/SidharthAnand04/infiniti-v/internal/errors"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

// ScriptService runs the scene-script generation pipeline from raw
// prompt to an assembled, validated script. It holds only the
// configured stage agents; every call builds a fresh script, so
// concurrent requests need no coordination.
type ScriptService struct {
	interpreter agents.Interpreter
	researcher  agents.Researcher
	planner     agents.Planner
	writer      agents.Writer
	director    agents.Director
}

// NewScriptService wires the pipeline stages from the agent registry.
// implName selects the stage implementations ("local" today; a
// generative backend later, with no change to the output contract).
func NewScriptService(implName string, gen config.GenerationConfig) (*ScriptService, error) {
	agentConfig := map[string]string{
		"dialogue_turns":        strconv.Itoa(gen.DialogueTurns),
		"target_length_seconds": strconv.Itoa(gen.TargetLengthSeconds),
	}

	interpreter, err := getStage(agents.RoleInterpreter, implName, agentConfig)
	if err != nil {
		return nil, err
	}
	researcher, err := getStage(agents.RoleResearcher, implName, agentConfig)
	if err != nil {
		return nil, err
	}
	planner, err := getStage(agents.RolePlanner, implName, agentConfig)
	if err != nil {
		return nil, err
	}
	writer, err := getStage(agents.RoleWriter, implName, agentConfig)
	if err != nil {
		return nil, err
	}
	director, err := getStage(agents.RoleDirector, implName, agentConfig)
	if err != nil {
		return nil, err
	}

	return &ScriptService{
		interpreter: interpreter.(agents.Interpreter),
		researcher:  researcher.(agents.Researcher),
		planner:     planner.(agents.Planner),
		writer:      writer.(agents.Writer),
		director:    director.(agents.Director),
	}, nil
}

func getStage(role agents.Role, name string, cfg map[string]string) (agents.Agent, error) {
	agent, err := agents.GetAgent(role, name, cfg)
	if err != nil {
		return nil, apperrors.NewProcessingError("failed to initialize "+string(role)+" agent", err)
	}
	return agent, nil
}

// GenerateScript transforms one prompt into an ordered ∞-VScript block
// sequence. Any stage failure aborts the whole generation; callers
// never see a partial or empty script.
func (s *ScriptService) GenerateScript(prompt string) (models.Script, error) {
	clean := strings.TrimSpace(prompt)
	if clean == "" {
		return nil, apperrors.NewInvalidPromptError("prompt must be a non-empty string")
	}

	meta, err := s.interpreter.Interpret(clean)
	if err != nil {
		return nil, apperrors.NewGenerationError("failed to interpret prompt", err)
	}

	refs, err := s.researcher.Research(meta)
	if err != nil {
		return nil, apperrors.NewGenerationError("failed to gather references", err)
	}

	plan, err := s.planner.Plan(meta, refs)
	if err != nil {
		return nil, apperrors.NewGenerationError("failed to plan scene", err)
	}

	dialogue, err := s.writer.WriteDialogue(meta, plan)
	if err != nil {
		return nil, apperrors.NewGenerationError("failed to write dialogue", err)
	}

	opening, perLine, err := s.director.DirectActions(meta, dialogue)
	if err != nil {
		return nil, apperrors.NewGenerationError("failed to direct actions", err)
	}
	if len(perLine) != len(dialogue) {
		return nil, apperrors.NewGenerationError("director produced mismatched action count", nil)
	}

	script := assembleScript(opening, dialogue, perLine)

	if err := script.Validate(); err != nil {
		return nil, apperrors.NewGenerationError("assembled script is malformed", err)
	}

	return script, nil
}

// assembleScript interleaves the blocks: the opening action first, then
// each dialogue line followed by its action. Ids are assigned as
// increasing integers starting at 1 in emission order.
func assembleScript(opening *models.ActionBlock, dialogue []*models.DialogueBlock, perLine []*models.ActionBlock) models.Script {
	script := make(models.Script, 0, 1+2*len(dialogue))
	nextID := 1

	emit := func(block models.SceneBlock) {
		switch b := block.(type) {
		case *models.DialogueBlock:
			b.ID = strconv.Itoa(nextID)
		case *models.ActionBlock:
			b.ID = strconv.Itoa(nextID)
		}
		nextID++
		script = append(script, block)
	}

	emit(opening)
	for i, line := range dialogue {
		emit(line)
		emit(perLine[i])
	}

	return script
}

// TimingVocabulary exposes the controlled action-timing vocabulary.
func (s *ScriptService) TimingVocabulary() []string {
	return models.TimingVocabulary()
}
