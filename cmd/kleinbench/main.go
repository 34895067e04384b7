// Copyright 2026 geoalg contributors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Command kleinbench exercises and times the geometric product across
// a set of named-entity mask pairs, optionally driven by a scenario
// file describing which pairs to run and how many iterations.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/geoalg/klein/klein"
)

var logger = log.New(os.Stderr, "kleinbench: ", 0)

// scenario describes one named pairing of entity kinds to multiply
// together and how many iterations to run, loaded from a user-supplied
// YAML file.
type scenario struct {
	Name       string `json:"name"`
	Left       string `json:"left"`
	Right      string `json:"right"`
	Iterations int    `json:"iterations"`
}

type scenarioFile struct {
	Scenarios []scenario `json:"scenarios"`
}

func defaultScenarios() []scenario {
	return []scenario{
		{Name: "plane*plane", Left: "plane", Right: "plane", Iterations: 1_000_000},
		{Name: "motor*point", Left: "motor", Right: "point", Iterations: 1_000_000},
		{Name: "motor*motor", Left: "motor", Right: "motor", Iterations: 1_000_000},
		{Name: "multivector*multivector", Left: "multivector", Right: "multivector", Iterations: 200_000},
	}
}

func loadScenarios(path string) ([]scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var sf scenarioFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if len(sf.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}
	return sf.Scenarios, nil
}

// sampleEntity returns a representative, nonzero Entity of the named
// kind, for use as a benchmark operand.
func sampleEntity(kind string) (klein.Entity, error) {
	switch kind {
	case "plane":
		return klein.NewPlane(1, 2, 3, 4).Entity, nil
	case "line":
		return klein.NewLine(1, 2, 3).Entity, nil
	case "ideal_line":
		return klein.NewIdealLine(1, 2, 3).Entity, nil
	case "bivector":
		return klein.NewBivector(1, 2, 3, 4, 5, 6).Entity, nil
	case "motor":
		return klein.RotationAbout(0, 0, 1, 0.7).Entity, nil
	case "point":
		return klein.NewPoint(1, 2, 3).Entity, nil
	case "direction":
		return klein.NewDirection(1, 2, 3).Entity, nil
	case "multivector":
		mv := klein.E1.Scale(1).Add(klein.E23.Scale(2)).Add(klein.E123.Scale(3))
		return mv, nil
	default:
		return klein.Entity{}, fmt.Errorf("unknown entity kind %q", kind)
	}
}

func runScenario(s scenario) error {
	left, err := sampleEntity(s.Left)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	right, err := sampleEntity(s.Right)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	iterations := s.Iterations
	if iterations <= 0 {
		iterations = 1
	}

	start := time.Now()
	var sink klein.Entity
	for i := 0; i < iterations; i++ {
		sink = left.Mul(right)
	}
	elapsed := time.Since(start)

	logger.Printf("%-24s mask=%s iterations=%d elapsed=%s ns/op=%.1f",
		s.Name, sink.Mask(), iterations, elapsed, float64(elapsed.Nanoseconds())/float64(iterations))
	return nil
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario file (default: a built-in set)")
	flag.Parse()

	logger.Printf("simd level: %s", klein.DetectSIMDLevel())

	scenarios := defaultScenarios()
	if *scenarioPath != "" {
		loaded, err := loadScenarios(*scenarioPath)
		if err != nil {
			logger.Fatalf("%s", err)
		}
		scenarios = loaded
	}

	for _, s := range scenarios {
		if err := runScenario(s); err != nil {
			logger.Fatalf("%s", err)
		}
	}
}
