// internal/agents/interface.go
package agents

import (
	"errors"

	"github.com/SidharthAnand04/infiniti-v/internal/models"
)

// Error definitions
var ErrUnknownAgent = errors.New("unknown agent")

// Role names the pipeline stage an agent fills.
type Role string

const (
	RoleInterpreter Role = "interpreter"
	RoleResearcher  Role = "researcher"
	RolePlanner     Role = "planner"
	RoleWriter      Role = "writer"
	RoleDirector    Role = "director"
)

// Agent is the base contract every pipeline stage implements. Each
// stage is a pure function of its inputs; a future generative backend
// replaces a stage without touching the block schema or the ordering
// contract downstream.
type Agent interface {
	// Initialize configures the agent before first use.
	Initialize(config map[string]string) error

	// GetName returns the agent implementation name.
	GetName() string
}

// Interpreter derives scene metadata fragments from a raw prompt.
// The prompt is already trimmed and known to be non-empty.
type Interpreter interface {
	Agent
	Interpret(prompt string) (*models.SceneMeta, error)
}

// Researcher gathers background references for the scene topic.
type Researcher interface {
	Agent
	Research(meta *models.SceneMeta) (*models.ReferenceSet, error)
}

// Planner outlines the scene: flow phases, turn count, camera plan.
type Planner interface {
	Agent
	Plan(meta *models.SceneMeta, refs *models.ReferenceSet) (*models.ScenePlan, error)
}

// Writer composes dialogue blocks. Blocks are returned without ids;
// the sequence assembler owns id assignment.
type Writer interface {
	Agent
	WriteDialogue(meta *models.SceneMeta, plan *models.ScenePlan) ([]*models.DialogueBlock, error)
}

// Director composes action blocks around the written dialogue: one
// opening action ahead of the first line, and one follow-up action per
// dialogue line. len(perLine) must equal len(dialogue).
type Director interface {
	Agent
	DirectActions(meta *models.SceneMeta, dialogue []*models.DialogueBlock) (opening *models.ActionBlock, perLine []*models.ActionBlock, err error)
}

// AgentFactory builds an uninitialized agent.
type AgentFactory func() Agent

// Registry keeps agent factories per role.
type Registry struct {
	factories map[Role]map[string]AgentFactory
}

// DefaultRegistry is the global agent registry.
var DefaultRegistry = &Registry{
	factories: make(map[Role]map[string]AgentFactory),
}

// Register adds an agent factory for a role.
func (r *Registry) Register(role Role, name string, factory AgentFactory) {
	if r.factories[role] == nil {
		r.factories[role] = make(map[string]AgentFactory)
	}
	r.factories[role][name] = factory
}

// GetAgent builds and initializes the named agent for a role.
func (r *Registry) GetAgent(role Role, name string, config map[string]string) (Agent, error) {
	factory, exists := r.factories[role][name]
	if !exists {
		return nil, ErrUnknownAgent
	}

	agent := factory()
	if err := agent.Initialize(config); err != nil {
		return nil, err
	}

	return agent, nil
}

// ListAgents returns the registered implementation names for a role.
func (r *Registry) ListAgents(role Role) []string {
	names := make([]string, 0, len(r.factories[role]))
	for name := range r.factories[role] {
		names = append(names, name)
	}
	return names
}

// Register adds an agent factory to the default registry.
func Register(role Role, name string, factory AgentFactory) {
	DefaultRegistry.Register(role, name, factory)
}

// GetAgent builds the named agent from the default registry.
func GetAgent(role Role, name string, config map[string]string) (Agent, error) {
	return DefaultRegistry.GetAgent(role, name, config)
}
