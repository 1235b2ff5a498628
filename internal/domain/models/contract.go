package models

import (
	"encoding/json"
	"fmt"
)

// Contract represents a compiled contract discovered in the Foundry out directory
type Contract struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	ArtifactPath string    `json:"artifactPath,omitempty"`
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// FullName returns the "path:name" form used to disambiguate contracts
func (c *Contract) FullName() string {
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}

// BytecodeObject represents bytecode information in a Foundry artifact
type BytecodeObject struct {
	Object string `json:"object"`
}

// Artifact represents a Foundry compilation artifact
type Artifact struct {
	ABI               json.RawMessage   `json:"abi"`
	Bytecode          BytecodeObject    `json:"bytecode"`
	MethodIdentifiers map[string]string `json:"methodIdentifiers"`
	Metadata          ArtifactMetadata  `json:"metadata"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// CompilationTarget returns the source path and contract name the artifact was compiled for
func (a *Artifact) CompilationTarget() (source, name string) {
	for s, n := range a.Metadata.Settings.CompilationTarget {
		return s, n
	}
	return "", ""
}
