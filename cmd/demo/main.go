// cmd/demo/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	_ "github.com/SidharthAnand04/infiniti-v/internal/agents/local"
	"github.com/SidharthAnand04/infiniti-v/internal/config"
	"github.com/SidharthAnand04/infiniti-v/internal/services"
)

// Runs the generation pipeline offline and prints the ∞-VScript JSON.
func main() {
	prompt := flag.String("prompt", "A teacher explains gravity to students in a treehouse.", "scene prompt")
	turns := flag.Int("turns", 8, "dialogue turns")
	flag.Parse()

	scriptService, err := services.NewScriptService("local", config.GenerationConfig{
		DialogueTurns:       *turns,
		TargetLengthSeconds: 150,
	})
	if err != nil {
		log.Fatalf("failed to build pipeline: %v", err)
	}

	script, err := scriptService.GenerateScript(*prompt)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	out, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal script: %v", err)
	}

	fmt.Println(string(out))
}
