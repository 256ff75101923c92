// internal/models/scene.go
package models

// SceneMeta is what the interpreter stage derives from a raw prompt:
// the content fragments every later stage builds on.
type SceneMeta struct {
	SceneTopic          string      `json:"scene_topic"`
	Setting             string      `json:"setting"`
	SceneType           string      `json:"scene_type"`
	Characters          []Character `json:"characters"`
	TargetLengthSeconds int         `json:"target_length_seconds"`
}

// Character is a speaking participant of the scene.
type Character struct {
	Name   string            `json:"name"`
	Role   string            `json:"role"`
	Traits map[string]string `json:"traits"`
}

// ReferenceSet holds background material gathered for a scene topic.
type ReferenceSet struct {
	References []string `json:"references"`
	Images     []string `json:"images"`
}

// ScenePlan is the planner's lightweight outline of the scene.
type ScenePlan struct {
	SceneTitle    string   `json:"scene_title"`
	Background    string   `json:"background"`
	Flow          []string `json:"flow"`
	DialogueTurns int      `json:"dialogue_turns"`
	CameraPlan    []string `json:"camera_plan"`
}
